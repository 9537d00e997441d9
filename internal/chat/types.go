package chat

import "smart-todo/internal/model"

// SendMessageOutput is the result of processing one chat message.
// TaskID is set when the dispatched action touched a concrete task
// (created, updated, or marked), nil otherwise.
type SendMessageOutput struct {
	Response   string
	Action     model.Intent
	TaskID     *int64
	Confidence float64
}
