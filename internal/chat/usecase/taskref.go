package usecase

import (
	"errors"
	"strconv"

	"smart-todo/internal/model"
)

var (
	errInvalidTaskRef    = errors.New("task reference is not a number")
	errTaskRefOutOfRange = errors.New("task reference is out of range")
)

// resolveTaskRef maps a 1-based ordinal string onto the task at that position
// in the creation-ordered list. The ordinal is returned alongside the task so
// callers can report which number missed.
//
// Ordinals are positions, not task IDs: "task 2" is the second task the user
// sees, whatever its database ID.
func resolveTaskRef(ref string, tasks []model.Task) (model.Task, int, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return model.Task{}, 0, errInvalidTaskRef
	}

	if n <= 0 || n > len(tasks) {
		return model.Task{}, n, errTaskRefOutOfRange
	}

	return tasks[n-1], n, nil
}
