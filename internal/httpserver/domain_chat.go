package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "smart-todo/internal/chat/delivery/http"
	chatRepo "smart-todo/internal/chat/repository/postgre"
	chatUC "smart-todo/internal/chat/usecase"
	"smart-todo/internal/classifier"
	"smart-todo/internal/middleware"
	"smart-todo/internal/task"
	"smart-todo/pkg/datemath"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUseCase task.UseCase) error {
	repo := chatRepo.New(srv.postgresDB, srv.l)

	cls := classifier.New(srv.llm, srv.l, srv.maxTokens)

	dates, err := datemath.NewParser(srv.timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", srv.timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	uc := chatUC.New(srv.l, repo, taskUseCase, cls, dates, srv.historyLimit)

	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
