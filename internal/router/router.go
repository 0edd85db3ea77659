package router

import "strings"

// Classify determines the intent of query and extracts its parameter.
// It never fails: no matching trigger yields IntentUnrecognized.
func (r *RuleRouter) Classify(query string) Classification {
	lowered := strings.ToLower(query)

	for _, rule := range r.rules {
		if !strings.Contains(lowered, rule.Trigger) {
			continue
		}
		return Classification{
			Intent:    rule.Intent,
			Parameter: extractAfterLast(lowered, rule.SplitToken),
		}
	}

	return Classification{Intent: IntentUnrecognized}
}

// extractAfterLast returns the trimmed text after the last occurrence of token.
// The trigger contains token, so the index is always found.
func extractAfterLast(s, token string) string {
	idx := strings.LastIndex(s, token)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(s[idx+len(token):])
}
