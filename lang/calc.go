package lang

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/reldate/zoned"
)

// Calc errors.
var (
	ErrCalcCompile  = errors.New("calc compilation failed")
	ErrCalcEvaluate = errors.New("calc evaluation failed")
)

// Calc compiles and runs an expr-lang program with date functions bound:
//
//	rel(text)            relative expression → time
//	at(text)             absolute date in the configured zone → time
//	startOf(t, unit)     start of the enclosing period
//	endOf(t, unit)       end of the enclosing period
//	shift(t, n, unit)    t moved by n units (negative n moves back)
//	fmtDate(t, pattern)  dayjs-style formatting (see [zoned.Time.Format])
//	valid(text)          whether text is a valid relative expression
//	zone                 the configured zone name
//
// Units are the single-character codes of [zoned.Unit]. Times are
// [time.Time], so expr-lang's comparison and subtraction operators apply:
//
//	rel("now/d") - rel("now-1d/d")   // 24h0m0s
func Calc(ctx context.Context, source string, opts ...Option) (any, error) {
	cfg := makeConfig(opts...)
	env := calcEnv(ctx, cfg)

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalcCompile, err)
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalcEvaluate, err)
	}

	cfg.logger.TraceContext(ctx, "calc",
		slog.String("source", source),
		slog.Any("result", result))

	return result, nil
}

func calcEnv(ctx context.Context, cfg config) map[string]any {
	bind := func(t time.Time) zoned.Time {
		return zoned.At(t, cfg.zone).WithWeekStart(cfg.weekStart)
	}

	return map[string]any{
		"zone": cfg.zone.String(),
		"rel": func(text string) (time.Time, error) {
			t, err := evaluate(ctx, text, cfg, nil)
			if err != nil {
				return time.Time{}, err
			}

			return t.Instant(), nil
		},
		"at": func(text string) (time.Time, error) {
			t, err := zoned.Parse(text, cfg.zone)
			if err != nil {
				return time.Time{}, err
			}

			return t.Instant(), nil
		},
		"startOf": func(t time.Time, code string) (time.Time, error) {
			u, err := unitCode(code)
			if err != nil {
				return time.Time{}, err
			}

			return bind(t).StartOf(u).Instant(), nil
		},
		"endOf": func(t time.Time, code string) (time.Time, error) {
			u, err := unitCode(code)
			if err != nil {
				return time.Time{}, err
			}

			return bind(t).EndOf(u).Instant(), nil
		},
		"shift": func(t time.Time, n int, code string) (time.Time, error) {
			u, err := unitCode(code)
			if err != nil {
				return time.Time{}, err
			}

			return bind(t).Add(n, u).Instant(), nil
		},
		"fmtDate": func(t time.Time, pattern string) string {
			return bind(t).Format(pattern)
		},
		"valid": func(text string) bool {
			_, err := evaluate(ctx, text, cfg, nil)

			return err == nil
		},
	}
}

func unitCode(code string) (zoned.Unit, error) {
	if r := []rune(code); len(r) == 1 {
		if u, ok := zoned.ParseUnit(r[0]); ok {
			return u, nil
		}
	}

	return 0, fmt.Errorf("%w %q, allowed: %s", ErrUnit, code, zoned.UnitCodes(", "))
}
