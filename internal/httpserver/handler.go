package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-todo/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	mw := srv.newMiddleware()
	srv.gin.Use(mw.RequestID())
}

func (srv *HTTPServer) newMiddleware() middleware.Middleware {
	return middleware.New(srv.l, middleware.Config{
		JWTSecret:           srv.jwtSecret,
		ChatRateLimitPerMin: srv.chatRateLimitPerMin,
	})
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := srv.newMiddleware()
	api := srv.gin.Group("/api/v1")

	taskUC, err := srv.setupTaskDomain(ctx, api, mw)
	if err != nil {
		return err
	}

	if err := srv.setupChatDomain(ctx, api, mw, taskUC); err != nil {
		return err
	}

	if err := srv.setupSuggestionDomain(ctx, api, mw, taskUC); err != nil {
		return err
	}

	return nil
}
