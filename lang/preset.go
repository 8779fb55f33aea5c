package lang

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Preset is a named quick-pick expression.
type Preset struct {
	ID    string `json:"id"    yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// DefaultPresets are the relative time ranges offered by default.
//
//nolint:gochecknoglobals
var DefaultPresets = []Preset{
	{ID: "now", Title: "Now", Value: "now"},
	{ID: "now-5m", Title: "Last 5 minutes", Value: "now-5m"},
	{ID: "now-15m", Title: "Last 15 minutes", Value: "now-15m"},
	{ID: "now-30m", Title: "Last 30 minutes", Value: "now-30m"},
	{ID: "now-1h", Title: "Last hour", Value: "now-1h"},
	{ID: "now-3h", Title: "Last 3 hours", Value: "now-3h"},
	{ID: "now-6h", Title: "Last 6 hours", Value: "now-6h"},
	{ID: "now-12h", Title: "Last 12 hours", Value: "now-12h"},
	{ID: "now-1d", Title: "Last day", Value: "now-1d"},
	{ID: "now-3d", Title: "Last 3 days", Value: "now-3d"},
	{ID: "now-1w", Title: "Last week", Value: "now-1w"},
	{ID: "now-1M", Title: "Last month", Value: "now-1M"},
}

// DatePresets are the calendar boundaries offered by default.
//
//nolint:gochecknoglobals
var DatePresets = []Preset{
	{ID: "now/d", Title: "Start of today", Value: "now/d"},
	{ID: "now-1d/d", Title: "Start of yesterday", Value: "now-1d/d"},
	{ID: "now/w", Title: "Start of week", Value: "now/w"},
	{ID: "now/M", Title: "Start of month", Value: "now/M"},
	{ID: "now/y", Title: "Start of year", Value: "now/y"},
}

// LoadPresets decodes a YAML sequence of presets. A preset without an ID
// takes its value as ID.
func LoadPresets(r io.Reader) ([]Preset, error) {
	var presets []Preset

	if err := yaml.NewDecoder(r).Decode(&presets); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decode presets: %w", err)
	}

	for i := range presets {
		if presets[i].ID == "" {
			presets[i].ID = presets[i].Value
		}
	}

	return presets, nil
}

// ValidatePresets evaluates every preset and returns all failures joined.
// Each failure wraps [ErrPreset] and the evaluator's [*Error].
func ValidatePresets(ctx context.Context, presets []Preset, opts ...Option) error {
	var errs []error

	for _, p := range presets {
		if _, err := Evaluate(ctx, p.Value, opts...); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrPreset, p.ID, err))
		}
	}

	return errors.Join(errs...)
}
