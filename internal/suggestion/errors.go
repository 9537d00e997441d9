package suggestion

import "errors"

// Domain-specific errors for the suggestion package.
var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrInvalidStatus      = errors.New("status must be accepted or dismissed")
	ErrNoOpenTasks        = errors.New("no open tasks to analyze")
)
