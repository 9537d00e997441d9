package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	suggestions := rg.Group("/suggestions")
	{
		suggestions.POST("/generate", mw.Auth(), h.Generate)
		suggestions.GET("", mw.Auth(), h.List)
		suggestions.PATCH("/:id", mw.Auth(), h.UpdateStatus)
	}
}
