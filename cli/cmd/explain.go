package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/reldate/lang"
)

// Explain prints every intermediate value of an expression.
type Explain struct {
	Expr   string `arg:"" help:"Relative expression" name:"expr"`
	Output string `       help:"Output format"                    default:"text" enum:"text,json,yaml" short:"o"`
	Layout string `       help:"Date pattern for text output (empty prints ISO 8601)"                short:"l"`
}

// Run executes the explain command.
func (e *Explain) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	steps, err := lang.Explain(ctx, e.Expr, settingsFrom(ctx).Options()...)
	if err != nil {
		return invalid(e.Expr, err)
	}

	w := outputFrom(ctx)

	if e.Output != OutputText {
		return write(ctx, w, e.Output, steps)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "OPERATION", "UNIT", "VALUE")

	for i, s := range steps {
		unit := ""
		if s.Operation.Unit != 0 {
			unit = s.Operation.Unit.Name()
		}

		t.Row(
			strconv.Itoa(i),
			s.Operation.String(),
			unit,
			formatTime(s.Value, e.Layout),
		)
	}

	_, err = fmt.Fprintln(w, t.Render())

	return err
}
