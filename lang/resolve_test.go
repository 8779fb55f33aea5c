package lang

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/reldate/zoned"
)

func TestLooksRelative(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"now", true},
		{"  NOW-5m", true},
		{"now-1x", true},
		{"nowhere", true},
		{"", false},
		{"no", false},
		{"2025-12-01", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		if got := LooksRelative(tt.text); got != tt.want {
			t.Errorf("LooksRelative(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, text := range []string{"now", "now-15m", "now/d", "now-1d/d"} {
		if !IsValid(t.Context(), text, testOpts()...) {
			t.Errorf("IsValid(%q) = false", text)
		}
	}

	for _, text := range []string{"", "now-", "nowhere", "now/2d"} {
		if IsValid(t.Context(), text, testOpts()...) {
			t.Errorf("IsValid(%q) = true", text)
		}
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"now-5m", ""},
		{"yesterday", HintKeyword},
		{"now-5", HintFormat},
		{"nowhere", HintFormat},
	}

	for _, tt := range tests {
		if got := Hint(t.Context(), tt.text, testOpts()...); got != tt.want {
			t.Errorf("Hint(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		text     string
		want     string
		relative bool
	}{
		{"now-1d", "2025-11-30T12:00:00.000Z", true},
		{"2025-06-15", "2025-06-15T00:00:00.000Z", false},
		{"2025-06-15T08:00:00+02:00", "2025-06-15T06:00:00.000Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Resolve(t.Context(), tt.text, testOpts()...)
			if err != nil {
				t.Fatal(err)
			}

			if got.Time.ISO() != tt.want || got.Relative != tt.relative {
				t.Errorf("Resolve(%q) = {%s %v}, want {%s %v}",
					tt.text, got.Time.ISO(), got.Relative, tt.want, tt.relative)
			}
		})
	}

	t.Run("errors are positioned", func(t *testing.T) {
		for _, text := range []string{"now-1x", "tomorrow", "2025-13-01"} {
			_, err := Resolve(t.Context(), text, testOpts()...)

			var le *Error
			if !errors.As(err, &le) {
				t.Errorf("Resolve(%q) error = %v, want *Error", text, err)
			}
		}
	})
}

func TestNewOutcome(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		out := NewOutcome(Evaluate(t.Context(), "now/d", testOpts()...))
		if !out.OK() {
			t.Fatalf("unexpected failure: %+v", out)
		}

		b, err := json.Marshal(out)
		if err != nil {
			t.Fatal(err)
		}

		if string(b) != `{"value":"2025-12-01T00:00:00.000Z"}` {
			t.Errorf("got %s", b)
		}
	})

	t.Run("error", func(t *testing.T) {
		out := NewOutcome(Evaluate(t.Context(), "now-1x", testOpts()...))
		if out.OK() {
			t.Fatal("expected failure")
		}

		b, err := json.Marshal(out)
		if err != nil {
			t.Fatal(err)
		}

		want := `{"errorPosition":5,"error":"unexpected time unit, allowed: s, m, h, d, w, M, Q, y"}`
		if string(b) != want {
			t.Errorf("got %s, want %s", b, want)
		}
	})

	t.Run("foreign error", func(t *testing.T) {
		out := NewOutcome(zoned.Time{}, errors.New("boom"))
		if out.Error != "boom" || out.ErrorPosition != nil || out.Value != nil {
			t.Errorf("got %+v", out)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		out := NewOutcome(Evaluate(t.Context(), "now/2d", testOpts()...))

		b, err := yaml.Marshal(out)
		if err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(string(b), "errorPosition: 4\n") ||
			strings.Contains(string(b), "value:") {
			t.Errorf("got %q", b)
		}
	})
}
