package task

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// All operations are scoped to the calling user; tasks owned by other users
// are invisible to every method.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)

	// List returns the user's tasks in stable creation order. This is the
	// ordering positional chat references resolve against.
	List(ctx context.Context, sc model.Scope) ([]model.Task, error)

	Get(ctx context.Context, sc model.Scope, id int64) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error

	// ToggleCompletion flips the completion state.
	ToggleCompletion(ctx context.Context, sc model.Scope, id int64) (model.Task, error)

	// SetCompletion sets the completion state absolutely.
	SetCompletion(ctx context.Context, sc model.Scope, id int64, completed bool) (model.Task, error)
}
