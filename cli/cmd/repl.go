package cmd

import (
	"context"

	"github.com/ardnew/reldate/cli/cmd/repl"
	"github.com/ardnew/reldate/log"
	"github.com/ardnew/reldate/pkg"
)

// Repl starts an interactive prompt.
type Repl struct {
	Layout    string `help:"Date pattern shown beside each value" default:"ddd, MMM D YYYY HH:mm:ss Z" short:"l"`
	NoHistory bool   `help:"Do not read or write the history file"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := settingsFrom(ctx)

	presets, err := LoadPresets(ctx, s.PresetFiles)
	if err != nil {
		return err
	}

	cfg := repl.Config{
		Presets: presets,
		Layout:  r.Layout,
		Logger:  log.Default(),
		Options: s.Options(),
	}

	if !r.NoHistory {
		cfg.HistoryFile = pkg.HistoryFile()
	}

	return repl.Run(ctx, cfg)
}
