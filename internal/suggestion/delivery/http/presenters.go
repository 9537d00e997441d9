package http

import (
	"time"

	"smart-todo/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending accepted dismissed"`
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type suggestionResp struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	TaskID    *int64 `json:"task_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func newSuggestionResp(s model.Suggestion) suggestionResp {
	return suggestionResp{
		ID:        s.ID,
		Type:      s.Type,
		Content:   s.Content,
		TaskID:    s.TaskID,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

type listResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func newListResp(suggestions []model.Suggestion) listResp {
	out := make([]suggestionResp, len(suggestions))
	for i, s := range suggestions {
		out[i] = newSuggestionResp(s)
	}
	return listResp{Suggestions: out}
}
