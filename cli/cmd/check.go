package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/reldate/lang"
)

//nolint:gochecknoglobals
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Check validates relative expressions and reports each failure with a
// caret under the offending character.
type Check struct {
	Expr  []string `arg:"" help:"Expression(s) to validate, '-' for stdin" name:"expr" optional:""`
	Quiet bool     `       help:"Only report through the exit status"                        short:"q"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := inputs(ctx, c.Expr)
	if err != nil {
		return err
	}

	opts := settingsFrom(ctx).Options()
	w := outputFrom(ctx)

	if c.Quiet {
		w = io.Discard
	}

	failed := 0

	for _, text := range exprs {
		_, eerr := lang.Evaluate(ctx, text, opts...)
		if eerr == nil {
			fmt.Fprintf(w, "%s %s\n", okStyle.Render("ok"), text)

			continue
		}

		failed++

		writeDiagnostic(ctx, w, text, eerr, opts)
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("total", len(exprs)),
		)
	}

	return nil
}

// writeDiagnostic prints err for text, followed by the source with a caret
// and a usage hint.
func writeDiagnostic(
	ctx context.Context,
	w io.Writer,
	text string,
	err error,
	opts []lang.Option,
) {
	fmt.Fprintf(w, "%s %s: %s\n", failStyle.Render("error"), text, err)

	var le *lang.Error
	if errors.As(err, &le) {
		for line := range strings.Lines(le.Caret()) {
			fmt.Fprintf(w, "  %s\n", strings.TrimSuffix(line, "\n"))
		}
	}

	if hint := lang.Hint(ctx, text, opts...); hint != "" {
		fmt.Fprintf(w, "  %s\n", hintStyle.Render(hint))
	}
}
