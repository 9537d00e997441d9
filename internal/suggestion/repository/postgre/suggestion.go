package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"smart-todo/internal/model"
	repo "smart-todo/internal/suggestion/repository"
)

const suggestionColumns = `id, user_id, task_id, suggestion_type, content, metadata, status, created_at`

func scanSuggestion(row interface{ Scan(...any) error }) (model.Suggestion, error) {
	var s model.Suggestion
	var metadata sql.NullString
	err := row.Scan(
		&s.ID, &s.UserID, &s.TaskID, &s.Type,
		&s.Content, &metadata, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		return model.Suggestion{}, err
	}
	s.Metadata = metadata.String
	return s, nil
}

// CreateSuggestion inserts a new pending Suggestion row.
func (r *implRepository) CreateSuggestion(ctx context.Context, sc model.Scope, opt repo.CreateSuggestionOptions) (model.Suggestion, error) {
	query := fmt.Sprintf(`
		INSERT INTO suggestions (user_id, task_id, suggestion_type, content, metadata, status, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), '%s', NOW())
		RETURNING %s`, model.SuggestionStatusPending, suggestionColumns)

	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query,
		sc.UserID, opt.TaskID, opt.Type, opt.Content, opt.Metadata,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSuggestion"), err)
		return model.Suggestion{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetOneSuggestion retrieves a single Suggestion owned by the caller.
func (r *implRepository) GetOneSuggestion(ctx context.Context, sc model.Scope, id int64) (model.Suggestion, error) {
	query := fmt.Sprintf(`SELECT %s FROM suggestions WHERE id = $1 AND user_id = $2`, suggestionColumns)

	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if err == sql.ErrNoRows {
		return model.Suggestion{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSuggestion"), err)
		return model.Suggestion{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSuggestions returns the caller's suggestions newest first.
func (r *implRepository) ListSuggestions(ctx context.Context, sc model.Scope, status string) ([]model.Suggestion, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM suggestions
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC`, suggestionColumns)

	rows, err := r.db.QueryContext(ctx, query, sc.UserID, status)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSuggestions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var suggestions []model.Suggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return suggestions, nil
}

// UpdateSuggestionStatus sets the status of a Suggestion owned by the caller.
func (r *implRepository) UpdateSuggestionStatus(ctx context.Context, sc model.Scope, id int64, status string) (model.Suggestion, error) {
	query := fmt.Sprintf(`
		UPDATE suggestions SET status = $3
		WHERE id = $1 AND user_id = $2
		RETURNING %s`, suggestionColumns)

	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query, id, sc.UserID, status))
	if err == sql.ErrNoRows {
		return model.Suggestion{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSuggestionStatus"), err)
		return model.Suggestion{}, repo.ErrFailedToUpdate
	}
	return s, nil
}
