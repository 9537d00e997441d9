package model

import "time"

// Suggestion types.
const (
	SuggestionTypePriority = "priority"
	SuggestionTypeDeadline = "deadline"
	SuggestionTypeGroup    = "group"
	SuggestionTypeReminder = "reminder"
)

// Suggestion statuses.
const (
	SuggestionStatusPending   = "pending"
	SuggestionStatusAccepted  = "accepted"
	SuggestionStatusDismissed = "dismissed"
)

// Suggestion is an AI-generated recommendation about a user's tasks.
type Suggestion struct {
	ID        int64
	UserID    int64
	TaskID    *int64 // set when the suggestion targets a specific task
	Type      string
	Content   string
	Metadata  string // optional JSON payload
	Status    string
	CreatedAt time.Time
}
