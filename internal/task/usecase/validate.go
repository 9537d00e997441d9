package usecase

import (
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", task.ErrEmptyTitle
	}
	if len([]rune(title)) > maxTitleLength {
		return "", task.ErrTitleTooLong
	}
	return title, nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if len([]rune(description)) > maxDescriptionLength {
		return "", task.ErrDescriptionTooLong
	}
	return description, nil
}

func validatePriority(priority string) (string, error) {
	if priority == "" {
		return model.PriorityMedium, nil
	}
	switch priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return priority, nil
	default:
		return "", task.ErrInvalidPriority
	}
}
