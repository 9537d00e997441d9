package model

import "time"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task status labels as presented to users.
const (
	StatusComplete   = "Complete"
	StatusIncomplete = "Incomplete"
)

// Task is a single todo item. IDs are assigned in monotonically increasing
// creation order; listing in ID order therefore equals creation order, which
// is the ordering positional references resolve against.
type Task struct {
	ID          int64
	UserID      int64
	Title       string // trimmed, 1-200 chars
	Description string // trimmed, 0-1000 chars
	Priority    string
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
}

// StatusLabel returns the user-facing completion label.
func (t Task) StatusLabel() string {
	if t.Completed {
		return StatusComplete
	}
	return StatusIncomplete
}
