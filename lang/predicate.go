package lang

import (
	"context"
	"strings"
)

// Hints returned by [Hint].
const (
	HintKeyword = `Expression must start with "now"`
	HintFormat  = "Invalid format. Examples: now, now-5m, now-1d, now/d, now-1d/d"
)

// LooksRelative reports whether text, once trimmed, opens with the "now"
// keyword. It runs the same keyword stage as [Evaluate], so it never
// disagrees with the evaluator about what a relative expression is.
func LooksRelative(text string) bool {
	return newScanner(strings.TrimSpace(text)).keyword() == nil
}

// IsValid reports whether text evaluates without error.
func IsValid(ctx context.Context, text string, opts ...Option) bool {
	_, err := Evaluate(ctx, text, opts...)

	return err == nil
}

// Hint returns a short usage hint for text. Empty and valid input get no
// hint.
func Hint(ctx context.Context, text string, opts ...Option) string {
	switch {
	case strings.TrimSpace(text) == "", IsValid(ctx, text, opts...):
		return ""
	case !LooksRelative(text):
		return HintKeyword
	default:
		return HintFormat
	}
}
