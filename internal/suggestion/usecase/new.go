package usecase

import (
	"smart-todo/internal/suggestion/repository"
	"smart-todo/internal/task"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	taskUC    task.UseCase
	llm       openai.IOpenAI
	maxTokens int
}

// New creates a new suggestion UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	taskUC task.UseCase,
	llm openai.IOpenAI,
	maxTokens int,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		taskUC:    taskUC,
		llm:       llm,
		maxTokens: maxTokens,
	}
}
