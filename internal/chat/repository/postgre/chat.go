package postgre

import (
	"context"
	"fmt"

	"smart-todo/internal/chat/repository"
	"smart-todo/internal/model"
)

const chatMessageColumns = `id, user_id, message, bot_response, intent, confidence, created_at`

// CreateChatMessage inserts one exchange row and returns the created entity.
func (r *implRepository) CreateChatMessage(ctx context.Context, sc model.Scope, opt repository.CreateChatMessageOptions) (model.ChatMessage, error) {
	query := fmt.Sprintf(`
		INSERT INTO chat_messages (user_id, message, bot_response, intent, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s`, chatMessageColumns)

	var msg model.ChatMessage
	err := r.db.QueryRowContext(ctx, query,
		sc.UserID, opt.Message, opt.BotResponse, opt.Intent, opt.Confidence,
	).Scan(
		&msg.ID, &msg.UserID, &msg.Message, &msg.BotResponse,
		&msg.Intent, &msg.Confidence, &msg.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateChatMessage"), err)
		return model.ChatMessage{}, repository.ErrFailedToInsert
	}
	return msg, nil
}

// ListChatMessages returns at most limit messages, newest first.
func (r *implRepository) ListChatMessages(ctx context.Context, sc model.Scope, limit int) ([]model.ChatMessage, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, chatMessageColumns)

	rows, err := r.db.QueryContext(ctx, query, sc.UserID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListChatMessages"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		if err := rows.Scan(
			&msg.ID, &msg.UserID, &msg.Message, &msg.BotResponse,
			&msg.Intent, &msg.Confidence, &msg.CreatedAt,
		); err != nil {
			return nil, repository.ErrFailedToList
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return messages, nil
}

// DeleteChatMessages removes all of the caller's messages.
func (r *implRepository) DeleteChatMessages(ctx context.Context, sc model.Scope) (int64, error) {
	const query = `DELETE FROM chat_messages WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteChatMessages"), err)
		return 0, repository.ErrFailedToDelete
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteChatMessages"), err)
		return 0, repository.ErrFailedToDelete
	}
	return deleted, nil
}
