package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration for values the service cannot start with.
func (c *Config) Validate() error {
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if c.Summarizer.MaxInputTokens <= 0 {
		return fmt.Errorf("summarizer.max_input_tokens must be positive, got %d", c.Summarizer.MaxInputTokens)
	}
	if c.Summarizer.MaxOutputTokens <= 0 {
		return fmt.Errorf("summarizer.max_output_tokens must be positive, got %d", c.Summarizer.MaxOutputTokens)
	}
	if c.Summarizer.MaxConcurrency <= 0 {
		return fmt.Errorf("summarizer.max_concurrency must be positive, got %d", c.Summarizer.MaxConcurrency)
	}
	return validateLLMConfig(&c.LLM)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return errors.New("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return errors.New("no enabled LLM providers")
	}

	return nil
}
