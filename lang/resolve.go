package lang

import (
	"context"
	"errors"

	"github.com/ardnew/reldate/zoned"
)

// Value is a resolved date.
type Value struct {
	Time zoned.Time
	// Relative is set when Time came from a relative expression rather than
	// an absolute date.
	Relative bool
}

// Resolve evaluates text as a relative expression, falling back to an
// absolute date in the configured zone (see [zoned.Parse]).
//
// Text that opens with the "now" keyword is never read as an absolute date.
// When neither reading succeeds the evaluator's [*Error] is returned.
func Resolve(ctx context.Context, text string, opts ...Option) (Value, error) {
	cfg := makeConfig(opts...)

	t, err := evaluate(ctx, text, cfg, nil)
	if err == nil {
		return Value{Time: t, Relative: true}, nil
	}

	if LooksRelative(text) {
		return Value{}, err
	}

	abs, perr := zoned.Parse(text, cfg.zone)
	if perr != nil {
		return Value{}, err
	}

	return Value{Time: abs.WithWeekStart(cfg.weekStart)}, nil
}

// Outcome is the result envelope handed to presentation layers. Exactly one
// of Value and Error is set.
type Outcome struct {
	Value         *zoned.Time `json:"value,omitempty"         yaml:"value,omitempty"`
	ErrorPosition *int        `json:"errorPosition,omitempty" yaml:"errorPosition,omitempty"`
	Error         string      `json:"error,omitempty"         yaml:"error,omitempty"`
}

// NewOutcome wraps the results of [Evaluate] or [Resolve]. ErrorPosition is
// set when err is (or wraps) an [*Error].
func NewOutcome(t zoned.Time, err error) Outcome {
	if err == nil {
		return Outcome{Value: &t}
	}

	out := Outcome{Error: err.Error()}

	var le *Error
	if errors.As(err, &le) {
		pos := le.Position
		out.ErrorPosition = &pos
	}

	return out
}

// OK reports whether o holds a value.
func (o Outcome) OK() bool { return o.Value != nil }
