// Package openaicompat talks to any backend exposing the OpenAI chat
// completions API (OpenAI itself, DeepSeek, Qwen through DashScope).
package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Known base URLs for OpenAI-compatible vendors.
const (
	BaseURLDeepSeek = "https://api.deepseek.com/v1"
	BaseURLQwen     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	DefaultTimeout = 30 * time.Second
)

// Config configures a chat-completions client.
type Config struct {
	APIKey     string
	BaseURL    string // empty means api.openai.com
	Model      string
	HTTPClient *http.Client
}

// Request is a single-turn chat completion.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	N                 int
}

// Response carries the first choice.
type Response struct {
	Text         string
	FinishReason string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Client is a thin wrapper around go-openai bound to one model.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openaicompat: API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("openaicompat: model is required")
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	} else {
		oc.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{client: openai.NewClientWithConfig(oc), model: cfg.Model}, nil
}

// Model returns the model being used
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a chat completion request.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, buildRequest(c.model, req))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: failed to call API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return &Response{}, nil
	}

	choice := resp.Choices[0]
	return &Response{
		Text:         choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}, nil
}

func buildRequest(model string, req *Request) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	n := req.N
	if n <= 0 {
		n = 1
	}

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		N:           n,
	}
}
