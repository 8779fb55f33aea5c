package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler writes colorized records, either as one line of key=value
// pairs or, when indent is set, as one "key: value" field per line inside
// braces. Group attributes (including [slog.LogValuer] results) are
// flattened into dotted keys.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix string
	attrs  []slog.Attr
	indent bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	indent bool,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		indent: indent,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if h.indent {
		buf.WriteString("{")
	}

	if !r.Time.IsZero() {
		h.writeAttr(buf, "", h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeAttr(buf, "", h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, "", slog.String(
				slog.SourceKey, src.File+":"+strconv.Itoa(src.Line),
			))
		}
	}

	h.writeAttr(buf, "", slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	if h.indent {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h

	// Qualify now so a later WithGroup does not apply to these.
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], qualify(h.prefix, attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// replace applies the configured ReplaceAttr to built-in attributes.
func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, sub, g)
		}

		return
	}

	switch {
	case h.indent:
		buf.WriteString("\n  ")
	case buf.Len() > 0:
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)

	if h.indent {
		buf.WriteString(": ")
	} else {
		buf.WriteByte('=')
	}

	writeValue(buf, a.Value)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	color, text := colorCyan, v.String()

	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		color = colorYellow
	case slog.KindBool:
		color = colorRed
		if v.Bool() {
			color = colorGreen
		}
	case slog.KindDuration:
		color = colorMagenta
	case slog.KindTime:
		color = colorBlue
	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			color, text = levelColor(level), strings.ToUpper(Level(level).String())
		} else if v.Any() == nil {
			color, text = colorGray, "null"
		}
	case slog.KindString:
		if level := levelOf(text); level != nil {
			color = levelColor(*level)
		}
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(colorReset)
}

// levelOf recognizes level names already rewritten by ReplaceAttr.
func levelOf(s string) *slog.Level {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if s == strings.ToUpper(l.String()) {
			level := slog.Level(l)

			return &level
		}
	}

	return nil
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}

func qualify(prefix string, attrs []slog.Attr) []slog.Attr {
	if prefix == "" {
		return attrs
	}

	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}

	return out
}
