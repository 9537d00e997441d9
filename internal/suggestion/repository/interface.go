package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the composed interface for the suggestion domain data store.
type Repository interface {
	SuggestionRepository
}

// SuggestionRepository defines data access methods for the Suggestion entity.
// Every method filters by sc.UserID.
type SuggestionRepository interface {
	CreateSuggestion(ctx context.Context, sc model.Scope, opt CreateSuggestionOptions) (model.Suggestion, error)

	// GetOneSuggestion returns the zero-value Suggestion (ID == 0) when not found.
	GetOneSuggestion(ctx context.Context, sc model.Scope, id int64) (model.Suggestion, error)

	// ListSuggestions returns suggestions newest first. An empty status means
	// no filter.
	ListSuggestions(ctx context.Context, sc model.Scope, status string) ([]model.Suggestion, error)

	// UpdateSuggestionStatus returns the zero-value Suggestion when not found.
	UpdateSuggestionStatus(ctx context.Context, sc model.Scope, id int64, status string) (model.Suggestion, error)
}
