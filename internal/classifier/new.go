package classifier

import (
	"context"

	"smart-todo/internal/model"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

// Classifier turns a free-form user message into a structured reading of
// what the user wants done.
type Classifier interface {
	Classify(ctx context.Context, message string) (model.ClassifiedMessage, error)
}

// LLMClassifier classifies user intent using an OpenAI chat completion.
type LLMClassifier struct {
	llm       openai.IOpenAI
	l         pkgLog.Logger
	maxTokens int
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier.
func New(llm openai.IOpenAI, l pkgLog.Logger, maxTokens int) *LLMClassifier {
	return &LLMClassifier{
		llm:       llm,
		l:         l,
		maxTokens: maxTokens,
	}
}
