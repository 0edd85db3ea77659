package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-assistant/internal/ask"
	"catalog-assistant/internal/catalog/repository"
	"catalog-assistant/internal/middleware"
	"catalog-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration
	mw           middleware.Middleware

	// Ask domain
	catalogRepo repository.Repository
	askUC       ask.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// TrustedProxies lists the proxies whose forwarding headers set the
	// client IP. Nil trusts none, so rate limiting keys on the peer address.
	TrustedProxies []string
	Middleware     middleware.Config

	// Ask domain
	CatalogRepo repository.Repository
	AskUseCase  ask.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		mw:           middleware.New(logger, cfg.Middleware),
		catalogRepo:  cfg.CatalogRepo,
		askUC:        cfg.AskUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogRepo == nil {
		return errors.New("catalog repository is required")
	}
	if srv.askUC == nil {
		return errors.New("ask use case is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
