package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	askHTTP "catalog-assistant/internal/ask/delivery/http"
)

// setupAskDomain creates the ask HTTP handler and registers its routes.
// The repository and use case are built in cmd/api and passed in through Config.
func (srv HTTPServer) setupAskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := askHTTP.New(srv.l, srv.askUC)

	// registers <prefix>/ask
	askHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Ask domain registered at POST %s/ask", api.BasePath())
	return nil
}
