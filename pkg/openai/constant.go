package openai

import "time"

const (
	// DefaultModel is the default chat completion model.
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens bounds completion length for classification calls.
	DefaultMaxTokens = 300
)
