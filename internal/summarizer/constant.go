package summarizer

import "time"

// Log prefixes
const (
	LogPrefixSummarize = "internal.summarizer.Summarize"
)

// Defaults applied by New when Config leaves a field zero.
const (
	DefaultPromptPrefix    = "Summarize: "
	DefaultMaxInputTokens  = 512
	DefaultMaxOutputTokens = 100
	DefaultTemperature     = 0.7
	DefaultTimeout         = 30 * time.Second
	DefaultMaxConcurrency  = 1
)

// controlTokens are model-internal markers removed from generated text.
var controlTokens = []string{
	"<|endoftext|>",
	"<|im_start|>",
	"<|im_end|>",
	"<|eot_id|>",
	"<|begin_of_text|>",
	"<|end_of_text|>",
	"<s>",
	"</s>",
	"<pad>",
	"<unk>",
	"[CLS]",
	"[SEP]",
	"[PAD]",
}
