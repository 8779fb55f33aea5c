package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func plain(w io.Writer, opts ...Option) Logger {
	return Make(w, append([]Option{
		WithFormat(FormatJSON), WithPretty(false), WithTimeLayout("none"),
	}, opts...)...)
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	return m
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level Level
		log   func(Logger)
		want  bool
	}{
		{LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{LevelDebug, func(l Logger) { l.Trace("m") }, false},
		{LevelDebug, func(l Logger) { l.Debug("m") }, true},
		{LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{LevelWarn, func(l Logger) { l.Info("m") }, false},
		{LevelWarn, func(l Logger) { l.Warn("m") }, true},
		{LevelError, func(l Logger) { l.Warn("m") }, false},
		{LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer

		tt.log(plain(&buf, WithLevel(tt.level)))

		if got := buf.Len() > 0; got != tt.want {
			t.Errorf("level %v: logged = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf, WithLevel(LevelTrace)).Trace("step")

	if got := decode(t, &buf)["level"]; got != "TRACE" {
		t.Errorf("level = %v, want TRACE", got)
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf, WithCaller(true)).Warn("here")

	src, ok := decode(t, &buf)["source"].(map[string]any)
	if !ok {
		t.Fatalf("no source in %s", buf.String())
	}

	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source file = %v, want log_test.go", src["file"])
	}
}

func TestLogger_WrapAndWith(t *testing.T) {
	var buf bytes.Buffer

	base := plain(&buf)
	wrapped := base.Wrap(WithLevel(LevelDebug)).With(slog.String("component", "lang"))

	if base.Level() != DefaultLevel {
		t.Errorf("Wrap modified the receiver: %v", base.Level())
	}

	wrapped.Debug("hello")

	m := decode(t, &buf)
	if m["component"] != "lang" || m["msg"] != "hello" {
		t.Errorf("unexpected record %v", m)
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Error("dropped")
	l.With(slog.Int("n", 1)).Info("dropped")

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero logger should report defaults")
	}

	if l.Enabled(t.Context(), LevelError) {
		t.Error("zero logger should not be enabled")
	}

	var buf bytes.Buffer

	l.Wrap(WithOutput(&buf), WithLevel(LevelInfo)).Info("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("Wrap on zero logger should produce a usable logger: %q", buf.String())
	}
}

type valuer struct{}

func (valuer) LogValue() slog.Value {
	return slog.GroupValue(slog.String("error", "bad"), slog.Int("position", 4))
}

func TestPrettyHandler(t *testing.T) {
	t.Run("text flattens groups", func(t *testing.T) {
		var buf bytes.Buffer

		l := Make(&buf, WithFormat(FormatText), WithPretty(true), WithTimeLayout("none"))
		l.With(slog.String("cmd", "eval")).Warn("failed", slog.Any("error", valuer{}))

		out := buf.String()
		for _, want := range []string{"WARN", "failed", "cmd", "eval", "error.error", "error.position"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q: %q", want, out)
			}
		}

		if strings.Count(out, "\n") != 1 {
			t.Errorf("pretty text should be one line: %q", out)
		}
	})

	t.Run("json is indented", func(t *testing.T) {
		var buf bytes.Buffer

		l := Make(&buf, WithFormat(FormatJSON), WithPretty(true), WithTimeLayout("none"))
		l.WithGroup("req").Error("boom", slog.Bool("retry", false))

		out := buf.String()
		if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}\n") {
			t.Errorf("unexpected framing: %q", out)
		}

		if !strings.Contains(out, "req.retry") {
			t.Errorf("group prefix missing: %q", out)
		}
	})
}

func TestLogger_Concurrent(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
	)

	l := plain(&lockedWriter{w: &buf, mu: &mu}, WithLevel(LevelDebug))

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			l.Debug("concurrent", slog.Int("i", i))
			_ = l.Wrap(WithCaller(i%2 == 0)).Level()
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "concurrent"); got != 20 {
		t.Errorf("got %d records, want 20", got)
	}
}

type lockedWriter struct {
	w  *bytes.Buffer
	mu *sync.Mutex
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.w == nil {
		return 0, errors.New("closed")
	}

	return lw.w.Write(p)
}
