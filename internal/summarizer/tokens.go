package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Estimate approximates the subword token count of text.
func Estimate(text string) int {
	total := 0
	for _, w := range strings.Fields(text) {
		total += estimateWord(w)
	}
	return total
}

func estimateWord(word string) int {
	if word == "" {
		return 0
	}
	runes := utf8.RuneCountInString(word)
	switch {
	case runes <= 4:
		return 1
	case runes <= 8:
		return 2
	case runes <= 16:
		return 3
	default:
		return 4
	}
}

// Truncate cuts text after the last whole word that fits in maxTokens.
// Whitespace between kept words is preserved; text that fits is returned unchanged.
func Truncate(text string, maxTokens int) string {
	count := 0
	end := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}

		count += estimateWord(text[start:i])
		if count > maxTokens {
			return text[:end]
		}
		end = i
	}
	return text
}
