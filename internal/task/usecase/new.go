package usecase

import (
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
	pkgLog "smart-todo/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   gcalendar.ICalendar // optional, nil when not configured
	calendarID string
	timezone   string
}

// New creates a new task UseCase instance.
// calendar may be nil; due-date sync is then skipped entirely.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar gcalendar.ICalendar,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
