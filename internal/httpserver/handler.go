package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"catalog-assistant/pkg/response"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "httpserver: panic recovered: %v", recovered)
		response.InternalError(c)
	}))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())
	if srv.environment != environmentProduction {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "Middlewares registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// The original surface lives at /api; /api/v1 mirrors it for versioned clients.
	for _, prefix := range []string{"/api", "/api/v1"} {
		api := srv.gin.Group(prefix, srv.mw.RateLimit())
		if err := srv.setupAskDomain(ctx, api); err != nil {
			return err
		}
	}

	return nil
}
