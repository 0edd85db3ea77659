package llmprovider

import (
	"context"

	"catalog-assistant/pkg/claude"
	"catalog-assistant/pkg/gemini"
	"catalog-assistant/pkg/ollama"
	"catalog-assistant/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		CandidateCount:    req.CandidateCount,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// OpenAICompatAdapter adapts pkg/openaicompat; name distinguishes the vendor (openai, deepseek, qwen).
type OpenAICompatAdapter struct {
	name   string
	client *openaicompat.Client
}

// NewOpenAICompatAdapter creates a new adapter for an OpenAI-compatible vendor
func NewOpenAICompatAdapter(name string, client *openaicompat.Client) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		N:                 req.CandidateCount,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string { return a.name }

// Model returns model name
func (a *OpenAICompatAdapter) Model() string { return a.client.Model() }

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client *ollama.Client
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client *ollama.Client) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &ollama.Request{
		System:      req.SystemInstruction,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string { return "ollama" }

// Model returns model name
func (a *OllamaAdapter) Model() string { return a.client.Model() }

// ClaudeAdapter adapts pkg/claude to llmprovider.Provider interface
type ClaudeAdapter struct {
	client *claude.Client
}

// NewClaudeAdapter creates a new Claude adapter
func NewClaudeAdapter(client *claude.Client) *ClaudeAdapter {
	return &ClaudeAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ClaudeAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &claude.Request{
		System:      req.SystemInstruction,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *ClaudeAdapter) Name() string { return "claude" }

// Model returns model name
func (a *ClaudeAdapter) Model() string { return a.client.Model() }
