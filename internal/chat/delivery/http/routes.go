package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// SendMessage carries the per-user rate limit on top of Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/message", mw.Auth(), mw.ChatRateLimit(), h.SendMessage)
		chatGroup.GET("/history", mw.Auth(), h.History)
		chatGroup.DELETE("/history", mw.Auth(), h.ClearHistory)
	}
}
