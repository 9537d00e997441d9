package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
// Values are already validated and trimmed by the use case.
type CreateTaskOptions struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Empty string fields are left unchanged; Completed is applied only when non-nil.
type UpdateTaskOptions struct {
	ID          int64
	Title       string
	Description string
	Completed   *bool
}
