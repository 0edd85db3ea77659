package usecase

import (
	"catalog-assistant/internal/catalog/repository"
	"catalog-assistant/internal/router"
	"catalog-assistant/internal/summarizer"
	"catalog-assistant/pkg/log"
)

// Options tunes degradation behavior of the use case.
type Options struct {
	// FallbackToRawText returns the joined supplier text when summarization fails.
	FallbackToRawText bool
}

// implUseCase is the private implementation of ask.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	router router.Router
	sum    summarizer.Summarizer
	opts   Options
}

// New creates a new ask UseCase implementation.
func New(l log.Logger, repo repository.Repository, rt router.Router, sum summarizer.Summarizer, opts Options) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		router: rt,
		sum:    sum,
		opts:   opts,
	}
}
