package cmd

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError(t *testing.T) {
	err := ErrWriteConfig.
		With(slog.String("file", "config.yaml")).
		Wrap(io.ErrUnexpectedEOF)

	if got, want := err.Error(), "write configuration file: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrWriteConfig) {
		t.Error("should match its sentinel")
	}

	if errors.Is(err, ErrFileExists) {
		t.Error("should not match another sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("should match the wrapped cause")
	}

	attrs := err.LogValue().Group()
	if len(attrs) != 3 || attrs[2].Key != "file" {
		t.Errorf("LogValue = %v", attrs)
	}

	if len(ErrWriteConfig.attrs) != 0 {
		t.Error("With must not modify the sentinel")
	}
}
