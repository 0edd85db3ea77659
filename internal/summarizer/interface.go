package summarizer

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"catalog-assistant/pkg/llmprovider"
	"catalog-assistant/pkg/log"
)

// Summarizer condenses text with a generative model.
// Output is not deterministic: identical input may yield different summaries.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Generator is the text generation backend, usually *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config bounds a summarization call.
type Config struct {
	PromptPrefix      string
	MaxInputTokens    int
	MaxOutputTokens   int
	CapIncludesPrompt bool
	Temperature       float64
	Timeout           time.Duration
	MaxConcurrency    int
}

type implSummarizer struct {
	l   log.Logger
	gen Generator
	cfg Config
	sem *semaphore.Weighted
}

var _ Summarizer = (*implSummarizer)(nil)

// New creates a Summarizer. Zero Config fields take the package defaults,
// except Temperature where 0 is a valid setting and only a negative value is unset.
func New(l log.Logger, gen Generator, cfg Config) Summarizer {
	if cfg.PromptPrefix == "" {
		cfg.PromptPrefix = DefaultPromptPrefix
	}
	if cfg.MaxInputTokens <= 0 {
		cfg.MaxInputTokens = DefaultMaxInputTokens
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}

	return &implSummarizer{
		l:   l,
		gen: gen,
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.MaxConcurrency)),
	}
}
