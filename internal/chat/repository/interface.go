package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	ChatMessageRepository
}

// ChatMessageRepository defines data access methods for chat history.
// Every method filters by sc.UserID.
type ChatMessageRepository interface {
	CreateChatMessage(ctx context.Context, sc model.Scope, opt CreateChatMessageOptions) (model.ChatMessage, error)

	// ListChatMessages returns at most limit messages, newest first.
	ListChatMessages(ctx context.Context, sc model.Scope, limit int) ([]model.ChatMessage, error)

	// DeleteChatMessages removes all of the user's messages and returns the
	// number deleted.
	DeleteChatMessages(ctx context.Context, sc model.Scope) (int64, error)
}
