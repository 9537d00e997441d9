package chat

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// SendMessage classifies the message, executes the resulting task action,
	// logs the exchange, and returns the assistant's reply. Every call that
	// returns nil error has appended exactly one history entry.
	SendMessage(ctx context.Context, sc model.Scope, message string) (SendMessageOutput, error)

	// History returns the user's most recent exchanges, oldest first.
	// A non-positive limit falls back to the configured default.
	History(ctx context.Context, sc model.Scope, limit int) ([]model.ChatMessage, error)

	// ClearHistory deletes all of the user's exchanges and returns the count.
	ClearHistory(ctx context.Context, sc model.Scope) (int64, error)
}
