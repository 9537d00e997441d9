package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Every method filters by sc.UserID; rows owned by other users behave as if
// they do not exist.
type TaskRepository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)

	// GetOneTask returns the zero-value Task (ID == 0) when not found, without error.
	GetOneTask(ctx context.Context, sc model.Scope, id int64) (model.Task, error)

	// ListTasks returns tasks in creation order (ascending ID).
	ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// UpdateTask applies non-empty option fields and returns the updated
	// entity, or the zero-value Task when not found.
	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (model.Task, error)

	DeleteTask(ctx context.Context, sc model.Scope, id int64) error
}
