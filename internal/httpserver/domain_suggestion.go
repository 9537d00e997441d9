package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	suggestionHTTP "smart-todo/internal/suggestion/delivery/http"
	suggestionRepo "smart-todo/internal/suggestion/repository/postgre"
	suggestionUC "smart-todo/internal/suggestion/usecase"
	"smart-todo/internal/task"
)

// setupSuggestionDomain initializes the suggestion domain and registers its routes.
func (srv *HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUseCase task.UseCase) error {
	repo := suggestionRepo.New(srv.postgresDB, srv.l)

	uc := suggestionUC.New(srv.l, repo, taskUseCase, srv.llm, srv.maxTokens)

	h := suggestionHTTP.New(srv.l, uc)
	suggestionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Suggestion domain registered")
	return nil
}
