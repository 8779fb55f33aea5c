package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestPresets_AllValid(t *testing.T) {
	for name, presets := range map[string][]Preset{
		"default": DefaultPresets,
		"date":    DatePresets,
	} {
		t.Run(name, func(t *testing.T) {
			if err := ValidatePresets(t.Context(), presets, testOpts()...); err != nil {
				t.Errorf("ValidatePresets: %v", err)
			}

			for _, p := range presets {
				if p.ID == "" || p.Title == "" || p.Value == "" {
					t.Errorf("incomplete preset %+v", p)
				}
			}
		})
	}
}

func TestLoadPresets(t *testing.T) {
	src := `
- id: shift
  title: Start of shift
  value: now/d+8h
- title: Last two weeks
  value: now-2w
`

	presets, err := LoadPresets(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	want := []Preset{
		{ID: "shift", Title: "Start of shift", Value: "now/d+8h"},
		{ID: "now-2w", Title: "Last two weeks", Value: "now-2w"},
	}

	if len(presets) != len(want) {
		t.Fatalf("got %d presets, want %d", len(presets), len(want))
	}

	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("preset %d = %+v, want %+v", i, presets[i], want[i])
		}
	}

	t.Run("empty", func(t *testing.T) {
		presets, err := LoadPresets(strings.NewReader(""))
		if err != nil || len(presets) != 0 {
			t.Errorf("got %v, %v", presets, err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := LoadPresets(strings.NewReader("id: [")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestValidatePresets_ReportsEveryFailure(t *testing.T) {
	presets := []Preset{
		{ID: "ok", Value: "now-1h"},
		{ID: "bad-unit", Value: "now-1x"},
		{ID: "bad-round", Value: "now/2d"},
	}

	err := ValidatePresets(t.Context(), presets, testOpts()...)
	if err == nil {
		t.Fatal("expected error")
	}

	if !errors.Is(err, ErrPreset) || !errors.Is(err, ErrUnit) ||
		!errors.Is(err, ErrRounding) {
		t.Errorf("missing wrapped errors: %v", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, `"bad-unit"`) || !strings.Contains(msg, `"bad-round"`) ||
		strings.Contains(msg, `"ok"`) {
		t.Errorf("unexpected message: %s", msg)
	}
}
