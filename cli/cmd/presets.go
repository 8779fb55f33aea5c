package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/log"
)

// Presets lists the preset catalog with every value resolved.
type Presets struct {
	Validate bool   `help:"Fail if any preset is not a valid expression"`
	Output   string `help:"Output format"                                  default:"text" enum:"text,json,yaml" short:"o"`
	Layout   string `help:"Date pattern for text output (empty prints ISO 8601)"                                short:"l"`
}

// presetRow is one resolved preset as written by structured output.
type presetRow struct {
	ID           string `json:"id"    yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Expr         string `json:"expr"  yaml:"expr"`
	lang.Outcome `yaml:",inline"`
}

// Run executes the presets command.
func (p *Presets) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := settingsFrom(ctx)
	opts := s.Options()

	presets, err := LoadPresets(ctx, s.PresetFiles)
	if err != nil {
		return err
	}

	if p.Validate {
		if err := lang.ValidatePresets(ctx, presets, opts...); err != nil {
			return ErrInvalidPresets.Wrap(err)
		}
	}

	rows := make([]presetRow, 0, len(presets))

	for _, preset := range presets {
		t, eerr := lang.Evaluate(ctx, preset.Value, opts...)
		rows = append(rows, presetRow{
			ID:      preset.ID,
			Title:   preset.Title,
			Expr:    preset.Value,
			Outcome: lang.NewOutcome(t, eerr),
		})
	}

	w := outputFrom(ctx)

	if p.Output != OutputText {
		return write(ctx, w, p.Output, rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "VALUE")

	for _, r := range rows {
		value := r.Error
		if r.OK() {
			value = formatTime(*r.Value, p.Layout)
		}

		t.Row(r.ID, r.Title, value)
	}

	_, err = fmt.Fprintln(w, t.Render())

	return err
}

// LoadPresets returns the built-in catalogs followed by the presets read
// from files, in order. A file preset replaces any earlier preset with the
// same ID. Missing files are skipped.
func LoadPresets(ctx context.Context, files []string) ([]lang.Preset, error) {
	presets := slices.Concat(lang.DefaultPresets, lang.DatePresets)

	for _, path := range files {
		loaded, err := loadPresetFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.TraceContext(ctx, "preset file not found", slog.String("file", path))

			continue
		}

		if err != nil {
			return nil, ErrLoadPresets.With(slog.String("file", path)).Wrap(err)
		}

		log.DebugContext(ctx, "presets loaded",
			slog.String("file", path),
			slog.Int("count", len(loaded)),
		)

		for _, preset := range loaded {
			i := slices.IndexFunc(presets, func(p lang.Preset) bool {
				return p.ID == preset.ID
			})
			if i < 0 {
				presets = append(presets, preset)
			} else {
				presets[i] = preset
			}
		}
	}

	return presets, nil
}

func loadPresetFile(path string) ([]lang.Preset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return lang.LoadPresets(file)
}
