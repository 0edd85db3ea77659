package summarizer

import "errors"

var (
	// ErrUnavailable means the generative backend failed or timed out.
	ErrUnavailable = errors.New("summarizer unavailable")
	// ErrEmptySummary means the backend answered with nothing usable.
	ErrEmptySummary = errors.New("empty summary")
	// ErrNoOutputBudget means the prompt consumed the whole prompt-inclusive cap.
	ErrNoOutputBudget = errors.New("no output token budget left after prompt")
)
