package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, priority, due_date, is_completed, created_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (user_id, title, description, priority, due_date, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING %s`, taskColumns)

	var task model.Task
	err := r.db.QueryRowContext(ctx, query,
		sc.UserID, opt.Title, opt.Description, opt.Priority, opt.DueDate,
	).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Priority, &task.DueDate, &task.Completed, &task.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task owned by the caller.
// Returns zero-value Task (ID == 0) when not found, without error.
func (r *implRepository) GetOneTask(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2`, taskColumns)

	var task model.Task
	err := r.db.QueryRowContext(ctx, query, id, sc.UserID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Priority, &task.DueDate, &task.Completed, &task.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns the caller's tasks in creation order. IDs are assigned by
// an ascending sequence, so ordering by ID equals ordering by creation time.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE user_id = $1 ORDER BY id ASC`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Priority, &task.DueDate, &task.Completed, &task.CreatedAt,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask applies the non-empty option fields and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	mods, args := r.buildUpdateQuery(sc, opt)
	if len(mods) == 0 {
		return r.GetOneTask(ctx, sc, opt.ID)
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $1 AND user_id = $2 RETURNING %s`, mods, taskColumns)

	var task model.Task
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Priority, &task.DueDate, &task.Completed, &task.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task owned by the caller.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
