package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/task"
	"smart-todo/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

// respondError translates domain errors into the matching HTTP response.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrTitleTooLong),
		errors.Is(err, task.ErrDescriptionTooLong),
		errors.Is(err, task.ErrInvalidPriority):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
