package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/task"
	taskHTTP "smart-todo/internal/task/delivery/http"
	taskRepo "smart-todo/internal/task/repository/postgre"
	taskUC "smart-todo/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
// The use case is returned because chat and suggestions dispatch through it.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, error) {
	repo := taskRepo.New(srv.postgresDB, srv.l)

	uc := taskUC.New(srv.l, repo, srv.calendar, srv.calendarID, srv.timezone)

	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc, nil
}
