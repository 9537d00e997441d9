package http

import (
	"time"

	"smart-todo/internal/chat"
	"smart-todo/internal/model"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message" binding:"required"`
}

type historyReq struct {
	Limit int `form:"limit"`
}

// --- Response DTOs ---

type sendMessageResp struct {
	Response   string  `json:"response"`
	Action     string  `json:"action"`
	TaskID     *int64  `json:"task_id,omitempty"`
	Confidence float64 `json:"confidence"`
}

func newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Response:   out.Response,
		Action:     string(out.Action),
		TaskID:     out.TaskID,
		Confidence: out.Confidence,
	}
}

type messageResp struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Intent    string `json:"intent"`
	CreatedAt string `json:"created_at"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
}

func newHistoryResp(messages []model.ChatMessage) historyResp {
	out := make([]messageResp, len(messages))
	for i, m := range messages {
		out[i] = messageResp{
			ID:        m.ID,
			Message:   m.Message,
			Response:  m.BotResponse,
			Intent:    m.Intent,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}
	return historyResp{Messages: out}
}

type clearHistoryResp struct {
	Deleted int64 `json:"deleted"`
}
