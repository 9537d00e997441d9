package repository

// CreateSuggestionOptions holds parameters for inserting a new Suggestion.
type CreateSuggestionOptions struct {
	TaskID   *int64
	Type     string
	Content  string
	Metadata string
}
