package lang

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ardnew/reldate/zoned"
)

// Op is an operation symbol.
type Op rune

const (
	OpSubtract Op = '-'
	OpAdd      Op = '+'
	OpRound    Op = '/'
)

// Operation is one parsed (symbol, amount, unit) triple.
// The zero Operation stands for the "now" keyword itself.
type Operation struct {
	Op     Op
	Amount int
	Unit   zoned.Unit
	// Position is the character offset of the operation symbol.
	Position int
}

// String renders o the way it could be written in an expression.
func (o Operation) String() string {
	switch o.Op {
	case 0:
		return keyword
	case OpRound:
		return string(o.Op) + o.Unit.String()
	default:
		return string(o.Op) + strconv.Itoa(o.Amount) + o.Unit.String()
	}
}

// MarshalText implements [encoding.TextMarshaler] using [Operation.String].
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Step is an operation and the value it produced.
type Step struct {
	Value     zoned.Time `json:"value"     yaml:"value"`
	Operation Operation  `json:"operation" yaml:"operation"`
}

// Evaluate resolves a relative date expression.
//
// On failure the returned error is an [*Error]; no partial result is
// returned.
func Evaluate(ctx context.Context, text string, opts ...Option) (zoned.Time, error) {
	return evaluate(ctx, text, makeConfig(opts...), nil)
}

// Explain evaluates text like [Evaluate] and returns every intermediate
// value. The first step is the clock reading for the "now" keyword.
func Explain(ctx context.Context, text string, opts ...Option) ([]Step, error) {
	var steps []Step

	_, err := evaluate(ctx, text, makeConfig(opts...), func(s Step) {
		steps = append(steps, s)
	})
	if err != nil {
		return nil, err
	}

	return steps, nil
}

func evaluate(
	ctx context.Context,
	text string,
	cfg config,
	record func(Step),
) (zoned.Time, error) {
	s := newScanner(text)

	if err := s.keyword(); err != nil {
		cfg.logger.TraceContext(ctx, "evaluate failed", slog.Any("error", err))

		return zoned.Time{}, err
	}

	current := cfg.now()

	cfg.logger.TraceContext(ctx, "evaluate",
		slog.String("text", text),
		slog.String("now", current.ISO()),
		slog.String("zone", current.Zone().String()))

	if record != nil {
		record(Step{Value: current})
	}

	for {
		s.skipSpaces()

		op := Op(s.peek())
		if op != OpSubtract && op != OpAdd && op != OpRound {
			break
		}

		at := s.pos

		s.advance()
		s.skipSpaces()

		n, start, err := s.amount()
		if err != nil {
			cfg.logger.TraceContext(ctx, "evaluate failed", slog.Any("error", err))

			return zoned.Time{}, err
		}

		s.skipSpaces()

		unit, err := s.unit()
		if err != nil {
			cfg.logger.TraceContext(ctx, "evaluate failed", slog.Any("error", err))

			return zoned.Time{}, err
		}

		switch op {
		case OpRound:
			if n != 1 {
				err := s.fail(KindRounding, start,
					`number should be 1 or missing for operation "/"`)
				cfg.logger.TraceContext(ctx, "evaluate failed", slog.Any("error", err))

				return zoned.Time{}, err
			}

			current = current.StartOf(unit)
		case OpAdd:
			current = current.Add(n, unit)
		case OpSubtract:
			current = current.Subtract(n, unit)
		}

		step := Step{
			Value:     current,
			Operation: Operation{Op: op, Amount: n, Unit: unit, Position: at},
		}

		cfg.logger.TraceContext(ctx, "apply",
			slog.String("operation", step.Operation.String()),
			slog.String("value", current.ISO()))

		if record != nil {
			record(step)
		}
	}

	if !s.eof() {
		err := s.fail(KindTrailing, s.pos,
			`unexpected char "`+string(s.peek())+`"`)
		cfg.logger.TraceContext(ctx, "evaluate failed", slog.Any("error", err))

		return zoned.Time{}, err
	}

	return current, nil
}
