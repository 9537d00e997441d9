package suggestion

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase defines the business logic interface for the suggestion domain.
type UseCase interface {
	// Generate asks the model for recommendations over the user's open tasks
	// and stores them as pending suggestions.
	Generate(ctx context.Context, sc model.Scope) ([]model.Suggestion, error)

	// List returns the user's suggestions, newest first, optionally filtered
	// by status.
	List(ctx context.Context, sc model.Scope, status string) ([]model.Suggestion, error)

	// UpdateStatus marks a suggestion accepted or dismissed.
	UpdateStatus(ctx context.Context, sc model.Scope, id int64, status string) (model.Suggestion, error)
}
