package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title exceeds 200 characters")
	ErrDescriptionTooLong = errors.New("description exceeds 1000 characters")
	ErrInvalidPriority    = errors.New("priority must be low, medium, or high")
)
