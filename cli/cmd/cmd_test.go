package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/ardnew/reldate/zoned"
)

// testNow is Monday, 2025-12-01 12:00:00 UTC.
var testNow = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

// testContext returns a context evaluating in UTC at testNow and the buffer
// command output is written to.
func testContext(t *testing.T, files ...string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	ctx := WithSettings(t.Context(), Settings{
		Zone:        zoned.UTC,
		Clock:       func() time.Time { return testNow },
		PresetFiles: files,
	})

	return WithOutput(ctx, &buf), &buf
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestWithSourceFilesEmpty(t *testing.T) {
	if sourceFilesFrom(WithSourceFiles(t.Context(), nil)) != nil {
		t.Error("WithSourceFiles(nil) should store nil reader")
	}

	if sourceFilesFrom(WithSourceFiles(t.Context(), []string{})) != nil {
		t.Error("WithSourceFiles([]) should store nil reader")
	}

	missing := filepath.Join(t.TempDir(), "missing")
	if sourceFilesFrom(WithSourceFiles(t.Context(), []string{missing})) != nil {
		t.Error("unreadable sources should store nil reader")
	}
}

func TestWithSourceFilesDeduplicates(t *testing.T) {
	path := writeFile(t, "exprs", "now-1d\n")

	link := filepath.Join(filepath.Dir(path), "link")
	if err := os.Symlink(path, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	src := sourceFilesFrom(WithSourceFiles(t.Context(), []string{path, link, path}))
	if src == nil {
		t.Fatal("expected a reader")
	}

	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "now-1d\n" {
		t.Errorf("read %q, want a single copy", data)
	}

	if src.Stdin() != nil {
		t.Error("stdin was not requested")
	}
}

func TestInputs(t *testing.T) {
	path := writeFile(t, "exprs", "# presets\nnow-1h\n\n  now/d  \n")
	ctx := WithSourceFiles(t.Context(), []string{path})

	got, err := inputs(ctx, []string{"now", "now-1w"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"now", "now-1w", "now-1h", "now/d"}
	if !slices.Equal(got, want) {
		t.Errorf("inputs = %q, want %q", got, want)
	}
}

func TestInputs_ClosesSourceFiles(t *testing.T) {
	ctx := WithSourceFiles(t.Context(), []string{writeFile(t, "exprs", "now\n")})

	src, ok := sourceFilesFrom(ctx).(*sourceFiles)
	if !ok || len(src.read) != 1 {
		t.Fatalf("unexpected source files %#v", sourceFilesFrom(ctx))
	}

	if _, err := inputs(ctx, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := src.read[0].Read(make([]byte, 1)); !errors.Is(err, os.ErrClosed) {
		t.Errorf("source file still open after reading: %v", err)
	}
}

func TestSettingsDefaults(t *testing.T) {
	s := settingsFrom(t.Context())

	if !s.Zone.IsLocal() || s.Clock != nil || s.WeekStart != time.Sunday {
		t.Errorf("zero settings = %+v", s)
	}

	if len(s.Options()) == 0 {
		t.Error("Options should never be empty")
	}
}

func TestOutputDefaultsToStdout(t *testing.T) {
	if outputFrom(t.Context()) != os.Stdout {
		t.Error("default output should be os.Stdout")
	}
}
