package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/suggestion"
	pkgLog "smart-todo/pkg/log"
)

// Handler is the public interface for the suggestion HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	List(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l pkgLog.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
