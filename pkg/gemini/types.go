package gemini

import (
	"errors"
	"net/http"
)

// Request is a single-turn generation request.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	CandidateCount    int
}

// Response carries the first candidate's text.
type Response struct {
	Text  string
	Usage Usage
}

// Usage reports token counts as returned by the API.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}
