package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-assistant/config"
	"catalog-assistant/config/postgre"
	_ "catalog-assistant/docs" // Swagger docs
	askUC "catalog-assistant/internal/ask/usecase"
	catalogRepo "catalog-assistant/internal/catalog/repository/postgre"
	"catalog-assistant/internal/httpserver"
	"catalog-assistant/internal/middleware"
	"catalog-assistant/internal/router"
	"catalog-assistant/internal/summarizer"
	"catalog-assistant/pkg/llmprovider"
	"catalog-assistant/pkg/log"
)

// @title       Catalog Assistant API
// @description Natural-language questions over a supplier/product catalog, with LLM supplier summaries.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FileEnabled:  cfg.Logger.FileEnabled,
		Filename:     cfg.Logger.Filename,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Catalog Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalog store
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if cfg.Postgres.AutoMigrate {
		if err := catalogRepo.EnsureSchema(ctx, db); err != nil {
			logger.Fatalf(ctx, "Failed to apply catalog schema: %v", err)
		}
		logger.Info(ctx, "Catalog schema ensured")
	}
	repo := catalogRepo.New(db, logger)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(ctx, logger, "llm.retry_delay", cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(ctx, logger, "llm.max_total_timeout", cfg.LLM.MaxTotalTimeout, time.Minute),
	}, logger)
	logger.Infof(ctx, "LLM providers (priority order): %v", manager.Providers())

	// 5. Summarizer + ask use case
	sum := summarizer.New(logger, manager, summarizer.Config{
		PromptPrefix:      cfg.Summarizer.PromptPrefix,
		MaxInputTokens:    cfg.Summarizer.MaxInputTokens,
		MaxOutputTokens:   cfg.Summarizer.MaxOutputTokens,
		CapIncludesPrompt: cfg.Summarizer.CapIncludesPrompt,
		Temperature:       cfg.Summarizer.Temperature,
		Timeout:           cfg.Summarizer.Timeout,
		MaxConcurrency:    cfg.Summarizer.MaxConcurrency,
	})
	uc := askUC.New(logger, repo, router.New(), sum, askUC.Options{
		FallbackToRawText: cfg.Summarizer.FallbackToRawText,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
			RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		},
		CatalogRepo: repo,
		AskUseCase:  uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(ctx context.Context, l log.Logger, key, raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		l.Warnf(ctx, "Invalid %s %q, using %s: %v", key, raw, fallback, err)
		return fallback
	}
	return d
}
