package usecase

import (
	"smart-todo/internal/chat/repository"
	"smart-todo/internal/classifier"
	"smart-todo/internal/task"
	"smart-todo/pkg/datemath"
	pkgLog "smart-todo/pkg/log"
)

const defaultHistoryLimit = 50

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	taskUC       task.UseCase
	classifier   classifier.Classifier
	dates        *datemath.Parser
	historyLimit int
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	taskUC task.UseCase,
	cls classifier.Classifier,
	dates *datemath.Parser,
	historyLimit int,
) *implUseCase {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		taskUC:       taskUC,
		classifier:   cls,
		dates:        dates,
		historyLimit: historyLimit,
	}
}
