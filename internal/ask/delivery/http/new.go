package http

import (
	"github.com/gin-gonic/gin"

	"catalog-assistant/internal/ask"
	"catalog-assistant/pkg/log"
)

// Handler is the public interface for the ask HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc ask.UseCase
}

// New creates a new HTTP handler for the ask domain.
func New(l log.Logger, uc ask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
