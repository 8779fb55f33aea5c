package repl

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/zoned"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	return newModel(t.Context(), Config{
		Presets: slices.Concat(lang.DefaultPresets, lang.DatePresets),
		Layout:  "ddd D MMM",
		Options: []lang.Option{
			lang.WithZone(zoned.UTC),
			lang.WithClock(func() time.Time { return now }),
		},
	}, NewHistory(""))
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)

		var ok bool
		if m, ok = next.(model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}

	return m
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

func TestModel_LivePreview(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"now-1d", "2025-11-30T12:00:00.000Z"},
		{"now/w", "2025-11-30T00:00:00.000Z  Sun 30 Nov"},
		{"2025-01-31", "2025-01-31T00:00:00.000Z"},
		{"now-1x", "^ unexpected time unit, allowed: s, m, h, d, w, M, Q, y"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := send(t, newTestModel(t), typed(tt.input))

			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("view %q does not contain %q", view, tt.want)
			}
		})
	}
}

func TestModel_CaretAlignsWithInput(t *testing.T) {
	m := send(t, newTestModel(t), typed("now-1x"))

	lines := strings.Split(m.View(), "\n")
	if len(lines) < 2 {
		t.Fatalf("view has %d lines", len(lines))
	}

	// Prompt "➜ " is two cells wide and the error is at offset 5.
	if got := strings.Index(lines[1], "^"); got != 7 {
		t.Errorf("caret at column %d, want 7 (%q)", got, lines[1])
	}
}

func TestCaretColumn(t *testing.T) {
	tests := []struct {
		src  string
		pos  int
		want int
	}{
		{"now-1x", 5, 5},
		{"now\u3000x", 4, 5},
		{"\u65e5\u672cx", 2, 4},
		{"\tnow-", 5, 5},
		{"now", 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := caretColumn(tt.src, tt.pos); got != tt.want {
				t.Errorf("caretColumn(%q, %d) = %d, want %d", tt.src, tt.pos, got, tt.want)
			}
		})
	}
}

func TestModel_EnterRecordsHistory(t *testing.T) {
	m := send(t, newTestModel(t), typed("now-1h"), key(tea.KeyEnter))

	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	if m.history.Len() != 1 {
		t.Fatalf("history Len = %d, want 1", m.history.Len())
	}

	m = send(t, m, key(tea.KeyUp))
	if m.input.Value() != "now-1h" {
		t.Errorf("history recall = %q", m.input.Value())
	}

	m = send(t, m, key(tea.KeyDown))
	if m.input.Value() != "" {
		t.Errorf("after Down = %q, want empty", m.input.Value())
	}
}

func TestModel_TabCompletesPreset(t *testing.T) {
	m := send(t, newTestModel(t), typed("yester"))

	if len(m.matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(m.matches))
	}

	m = send(t, m, key(tea.KeyTab))
	if got := m.input.Value(); got != "now-1d/d" {
		t.Errorf("completion = %q, want now-1d/d", got)
	}
}

func TestModel_TabCyclesAndEscRestores(t *testing.T) {
	m := send(t, newTestModel(t), typed("hour"))

	if len(m.matches) < 2 {
		t.Fatalf("matches = %d, want several", len(m.matches))
	}

	m = send(t, m, key(tea.KeyTab))
	first := m.input.Value()

	m = send(t, m, key(tea.KeyTab))
	if m.input.Value() == first {
		t.Error("second Tab did not advance")
	}

	m = send(t, m, key(tea.KeyShiftTab))
	if m.input.Value() != first {
		t.Errorf("Shift-Tab = %q, want %q", m.input.Value(), first)
	}

	m = send(t, m, key(tea.KeyEsc))
	if m.input.Value() != "hour" || m.tabActive {
		t.Errorf("Esc did not restore input: %q", m.input.Value())
	}
}

func TestModel_ModeToggle(t *testing.T) {
	m := send(t, newTestModel(t), typed("now"), key(tea.KeyEsc))

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("mode = %v, input = %q", m.mode, m.input.Value())
	}

	m = send(t, m, typed("pre"))
	if len(m.matches) == 0 || m.matches[0].Str != "presets" {
		t.Errorf("matches = %v", m.matches)
	}

	m = send(t, m, key(tea.KeyEsc))
	if m.mode != modeEval || m.input.Value() != "now" {
		t.Errorf("mode = %v, input = %q", m.mode, m.input.Value())
	}
}

func TestModel_Quit(t *testing.T) {
	next, cmd := newTestModel(t).Update(key(tea.KeyCtrlD))

	if !next.(model).quitting || cmd == nil {
		t.Error("Ctrl+D on empty input should quit")
	}

	if next.(model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestDiagnostic(t *testing.T) {
	_, err := lang.Evaluate(t.Context(), "now/2d")

	want := "error: number should be 1 or missing for operation \"/\"\nnow/2d\n    ^"
	if got := diagnostic(err); got != want {
		t.Errorf("diagnostic = %q, want %q", got, want)
	}
}
