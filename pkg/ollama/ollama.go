package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	DefaultHost    = "http://localhost:11434"
	DefaultTimeout = 60 * time.Second
)

// Config configures the Ollama client.
type Config struct {
	Host       string
	Model      string
	HTTPClient *http.Client
}

// Request is a one-shot, non-streaming generation request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int // maps to num_predict
}

// Response holds the generated text and evaluation counts.
type Response struct {
	Text         string
	DoneReason   string
	InputTokens  int
	OutputTokens int
}

// Client generates text with a locally served model.
type Client struct {
	api   *api.Client
	model string
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama: model is required")
	}
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama: invalid host %q: %w", host, err)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{api: api.NewClient(u, hc), model: cfg.Model}, nil
}

// Model returns the model being used
func (c *Client) Model() string {
	return c.model
}

// GenerateContent runs a generation and collects the result.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var (
		text strings.Builder
		last api.GenerateResponse
	)

	err := c.api.Generate(ctx, buildRequest(c.model, req), func(gr api.GenerateResponse) error {
		text.WriteString(gr.Response)
		last = gr
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama: generate: %w", err)
	}

	return &Response{
		Text:         text.String(),
		DoneReason:   last.DoneReason,
		InputTokens:  last.PromptEvalCount,
		OutputTokens: last.EvalCount,
	}, nil
}

func buildRequest(model string, req *Request) *api.GenerateRequest {
	stream := false
	options := map[string]any{
		"temperature": req.Temperature,
	}
	if req.MaxTokens > 0 {
		options["num_predict"] = req.MaxTokens
	}
	return &api.GenerateRequest{
		Model:   model,
		System:  req.System,
		Prompt:  req.Prompt,
		Stream:  &stream,
		Options: options,
	}
}
