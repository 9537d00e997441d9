package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

// Repository is an in-memory task store. It backs the console application and
// honors the same contract as the PostgreSQL repository: zero-value results
// for not-found, creation-ordered listing, owner filtering on every call.
type Repository struct {
	mu     sync.Mutex
	tasks  map[int64]model.Task
	nextID int64
}

var _ repo.Repository = (*Repository)(nil)

// New creates an empty in-memory Repository.
func New() *Repository {
	return &Repository{
		tasks:  make(map[int64]model.Task),
		nextID: 1,
	}
}

// CreateTask stores a new Task and returns it.
func (r *Repository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := model.Task{
		ID:          r.nextID,
		UserID:      sc.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   time.Now(),
	}
	r.tasks[task.ID] = task
	r.nextID++

	return task, nil
}

// GetOneTask returns the zero-value Task when not found or owned by another user.
func (r *Repository) GetOneTask(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != sc.UserID {
		return model.Task{}, nil
	}
	return task, nil
}

// ListTasks returns the caller's tasks in creation order.
func (r *Repository) ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tasks []model.Task
	for _, task := range r.tasks {
		if task.UserID == sc.UserID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// UpdateTask applies non-empty option fields and returns the updated entity.
func (r *Repository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.ID]
	if !ok || task.UserID != sc.UserID {
		return model.Task{}, nil
	}

	if opt.Title != "" {
		task.Title = opt.Title
	}
	if opt.Description != "" {
		task.Description = opt.Description
	}
	if opt.Completed != nil {
		task.Completed = *opt.Completed
	}

	r.tasks[opt.ID] = task
	return task, nil
}

// DeleteTask removes a Task owned by the caller. Deleting a missing task is a no-op.
func (r *Repository) DeleteTask(ctx context.Context, sc model.Scope, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if ok && task.UserID == sc.UserID {
		delete(r.tasks, id)
	}
	return nil
}
