package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/zoned"
)

// Calc runs a date arithmetic program.
type Calc struct {
	Program []string `arg:"" help:"Program source; arguments are joined with spaces" name:"program"`
	Output  string   `       help:"Output format"                                     default:"text" enum:"text,json,yaml" short:"o"`
}

// calcResult is a program and its value as written by structured output.
type calcResult struct {
	Program string `json:"program" yaml:"program"`
	Result  any    `json:"result"  yaml:"result"`
}

// Run executes the calc command.
func (c *Calc) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := settingsFrom(ctx)
	source := strings.Join(c.Program, " ")

	value, err := lang.Calc(ctx, source, s.Options()...)
	if err != nil {
		return ErrCalc.With(slog.String("program", source)).Wrap(err)
	}

	value = presentable(value, s.Zone)
	w := outputFrom(ctx)

	if c.Output != OutputText {
		return write(ctx, w, c.Output, calcResult{Program: source, Result: value})
	}

	_, err = fmt.Fprintln(w, value)

	return err
}

// presentable converts times to [zoned.Time] in zone and durations to their
// string form so every output format renders them the same way.
func presentable(value any, zone zoned.Zone) any {
	switch v := value.(type) {
	case time.Time:
		return zoned.At(v, zone)
	case time.Duration:
		return v.String()
	default:
		return v
	}
}
