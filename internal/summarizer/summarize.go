package summarizer

import (
	"context"
	"fmt"
	"strings"

	"catalog-assistant/pkg/llmprovider"
)

// Summarize prefixes text with the instruction marker, bounds the prompt and
// output length and returns the cleaned model output.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := Truncate(s.cfg.PromptPrefix+text, s.cfg.MaxInputTokens)
	promptTokens := Estimate(prompt)

	maxTokens, err := outputBudget(s.cfg.MaxOutputTokens, promptTokens, s.cfg.CapIncludesPrompt)
	if err != nil {
		s.l.Warnf(ctx, "%s: prompt_tokens=%d cap=%d: %v", LogPrefixSummarize, promptTokens, s.cfg.MaxOutputTokens, err)
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.l.Warnf(ctx, "%s: waiting for backend slot: %v", LogPrefixSummarize, err)
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer s.sem.Release(1)

	resp, err := s.gen.GenerateContent(ctx, &llmprovider.Request{
		Prompt:         prompt,
		Temperature:    s.cfg.Temperature,
		MaxTokens:      maxTokens,
		CandidateCount: 1,
	})
	if err != nil {
		s.l.Errorf(ctx, "%s: generate: %v", LogPrefixSummarize, err)
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	summary := clean(resp.Text, prompt, s.cfg.PromptPrefix)
	if summary == "" {
		s.l.Warnf(ctx, "%s: provider=%s returned no usable text", LogPrefixSummarize, resp.ProviderName)
		return "", ErrEmptySummary
	}

	s.l.Debugf(ctx, "%s: provider=%s prompt_tokens=%d max_tokens=%d", LogPrefixSummarize, resp.ProviderName, promptTokens, maxTokens)
	return summary, nil
}

// outputBudget returns the continuation token limit to request.
// With includesPrompt the cap covers prompt and continuation together.
func outputBudget(limit, promptTokens int, includesPrompt bool) (int, error) {
	if !includesPrompt {
		return limit, nil
	}
	budget := limit - promptTokens
	if budget <= 0 {
		return 0, ErrNoOutputBudget
	}
	return budget, nil
}

// clean strips control tokens and an echoed prompt from generated text.
func clean(out, prompt, prefix string) string {
	for _, tok := range controlTokens {
		out = strings.ReplaceAll(out, tok, "")
	}
	out = strings.TrimSpace(out)

	if p := strings.TrimSpace(prompt); p != "" && strings.HasPrefix(out, p) {
		out = strings.TrimPrefix(out, p)
	} else if p := strings.TrimSpace(prefix); p != "" && strings.HasPrefix(out, p) {
		out = strings.TrimPrefix(out, p)
	}
	return strings.TrimSpace(out)
}
