package task

import "time"

// CreateTaskInput is the input for creating a task.
// Title and Description are trimmed before validation.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string // defaults to medium when empty
	DueDate     *time.Time
}

// UpdateTaskInput is the input for a partial task update.
// Empty fields keep their current values.
type UpdateTaskInput struct {
	ID          int64
	Title       string
	Description string
}
