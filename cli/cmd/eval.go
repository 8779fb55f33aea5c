package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/log"
	"github.com/ardnew/reldate/zoned"
)

// Eval resolves relative expressions and absolute dates.
type Eval struct {
	Expr   []string `arg:"" help:"Expression(s) or absolute date(s), '-' for stdin" name:"expr" optional:""`
	Output string   `       help:"Output format"                                          default:"text" enum:"text,json,yaml" short:"o"`
	Layout string   `       help:"Date pattern for text output (empty prints ISO 8601)"                                     short:"l"`
	Strict bool     `       help:"Accept relative expressions only"`
}

// result is one evaluated input as written by structured output.
type result struct {
	Input        string `json:"input" yaml:"input"`
	lang.Outcome `yaml:",inline"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := inputs(ctx, e.Expr)
	if err != nil {
		return err
	}

	opts := settingsFrom(ctx).Options()
	results := make([]result, 0, len(exprs))

	var errs []error

	for _, text := range exprs {
		t, rerr := e.resolve(ctx, text, opts)
		if rerr != nil {
			errs = append(errs, invalid(text, rerr))
		}

		results = append(results, result{Input: text, Outcome: lang.NewOutcome(t, rerr)})
	}

	log.DebugContext(ctx, "evaluated",
		slog.Int("count", len(results)),
		slog.Int("failed", len(errs)),
	)

	w := outputFrom(ctx)

	if e.Output != OutputText {
		if err := write(ctx, w, e.Output, results); err != nil {
			return err
		}

		return joinErrors(errs)
	}

	for _, r := range results {
		if r.OK() {
			if _, err := fmt.Fprintln(w, formatTime(*r.Value, e.Layout)); err != nil {
				return err
			}
		}
	}

	return joinErrors(errs)
}

func (e *Eval) resolve(
	ctx context.Context,
	text string,
	opts []lang.Option,
) (zoned.Time, error) {
	if e.Strict {
		return lang.Evaluate(ctx, text, opts...)
	}

	v, err := lang.Resolve(ctx, text, opts...)

	return v.Time, err
}

// formatTime renders t with a dayjs-style layout, or as ISO 8601 when the
// layout is empty.
func formatTime(t zoned.Time, layout string) string {
	if layout == "" {
		return t.ISO()
	}

	return t.Format(layout)
}

// invalid decorates an evaluation failure with the input and, when known,
// the offending position.
func invalid(text string, err error) *Error {
	e := ErrInvalidExpression.With(slog.String("expr", text))

	var le *lang.Error
	if errors.As(err, &le) {
		e = e.With(slog.Int("position", le.Position))
	}

	return e.Wrap(err)
}

// joinErrors returns nil, the only error, or all errors joined.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
