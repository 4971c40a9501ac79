package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fanhub-webhooks/internal/model"
	"fanhub-webhooks/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	// Wrong verb on a known path is 405, unknown path is 404.
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoMethod(response.MethodNotAllowed)
	srv.gin.NoRoute(response.NotFound)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers the webhook endpoints under /api/webhooks.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	webhooks := srv.gin.Group("/api/webhooks", srv.mw.Guard())

	srv.setupSignupDomain(ctx, webhooks)
	srv.setupApprovalDomain(ctx, webhooks)

	return nil
}
