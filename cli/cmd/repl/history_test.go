package repl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHistory_WriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "history")

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}

	for _, e := range []HistoryEntry{
		{"now-1d", modeEval},
		{"presets", modeCtrl},
		{"now/w", modeEval},
	} {
		if _, err := h.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q): %v", e.Line, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), "E:now-1d\nC:presets\nE:now/w\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if reloaded.Len() != 3 {
		t.Fatalf("Len = %d, want 3", reloaded.Len())
	}

	entry, err := reloaded.GetEntry(1)
	if err != nil {
		t.Fatal(err)
	}

	if entry.Line != "presets" || entry.Mode != modeCtrl {
		t.Errorf("entry 1 = %+v", entry)
	}
}

func TestHistory_Duplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h := NewHistory(path)

	for _, line := range []string{"now-1d", "now-1d", "now/d", "now-1d"} {
		if _, err := h.Write(line); err != nil {
			t.Fatal(err)
		}
	}

	var lines []string
	for _, e := range h.Entries() {
		lines = append(lines, e.Line)
	}

	if got := strings.Join(lines, ","); got != "now/d,now-1d" {
		t.Errorf("entries = %s, want now/d,now-1d", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "E:now/d\nE:now-1d\n" {
		t.Errorf("file = %q", data)
	}
}

func TestHistory_SameLineDifferentMode(t *testing.T) {
	h := NewHistory("")

	_, _ = h.WriteWithMode("zone", modeEval)
	_, _ = h.WriteWithMode("zone", modeCtrl)

	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
}

func TestHistory_LegacyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("now-1h\n\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	want := []HistoryEntry{{"now-1h", modeEval}, {"quit", modeCtrl}}

	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("entries = %+v", got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestHistory_OutOfBounds(t *testing.T) {
	h := NewHistory("")

	for _, i := range []int{-1, 0, 1} {
		if _, err := h.GetEntry(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetEntry(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}
