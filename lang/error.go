package lang

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

import (
	"errors"
	"log/slog"
	"strings"
)

// Kind classifies evaluation failures.
type Kind int

const (
	KindLiteral  Kind = iota // literal mismatch
	KindUnit                 // unknown unit
	KindRounding             // invalid rounding amount
	KindOverflow             // numeric overflow
	KindTrailing             // trailing input
)

// Sentinel errors matched by [errors.Is] against an [*Error] of the same
// [Kind].
var (
	ErrLiteral  = errors.New(KindLiteral.String())
	ErrUnit     = errors.New(KindUnit.String())
	ErrRounding = errors.New(KindRounding.String())
	ErrOverflow = errors.New(KindOverflow.String())
	ErrTrailing = errors.New(KindTrailing.String())
)

// ErrPreset is wrapped by every failure reported by [ValidatePresets].
var ErrPreset = errors.New("invalid preset")

// Err returns the sentinel error for k, or nil if k is undefined.
func (k Kind) Err() error {
	switch k {
	case KindLiteral:
		return ErrLiteral
	case KindUnit:
		return ErrUnit
	case KindRounding:
		return ErrRounding
	case KindOverflow:
		return ErrOverflow
	case KindTrailing:
		return ErrTrailing
	default:
		return nil
	}
}

// Error is a positioned evaluation failure.
//
// Message is meant to be shown verbatim next to a marker placed at
// Position, the zero-based character (not byte) offset of the offending
// input. A failure at end of input has Position equal to the number of
// characters in Source.
type Error struct {
	Source   string
	Message  string
	Position int
	Kind     Kind
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the sentinel for the error's [Kind].
func (e *Error) Unwrap() error { return e.Kind.Err() }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Message),
		slog.String("kind", e.Kind.String()),
		slog.Int("position", e.Position),
		slog.String("source", e.Source),
	)
}

// Caret renders the source text with a '^' marker under the offending
// character on the following line. Tabs before the position are kept so the
// marker lines up in a terminal.
func (e *Error) Caret() string {
	var buf strings.Builder

	buf.WriteString(e.Source)
	buf.WriteRune('\n')

	for i, r := range []rune(e.Source) {
		if i >= e.Position {
			break
		}

		if r == '\t' {
			buf.WriteRune('\t')
		} else {
			buf.WriteRune(' ')
		}
	}

	buf.WriteRune('^')

	return buf.String()
}
