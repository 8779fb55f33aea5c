package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/log"
)

const defaultEditor = "vi"

// editPresetsCommand implements [tea.ExecCommand] for the preset
// edit-validate-retry loop. It writes the session's catalog to a temp file,
// opens the user's editor, and loads the result. When a preset fails to
// evaluate the user is prompted to re-edit; declining exits the program.
type editPresetsCommand struct {
	presets    []lang.Preset
	opts       []lang.Option
	ctxFunc    func() context.Context
	newPresets []lang.Preset
	logger     log.Logger
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editPresetsCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editPresetsCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editPresetsCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-validate-retry loop. If the user declines to
// re-edit, it returns [ErrEditDeclined].
func (c *editPresetsCommand) Run() error {
	ctx := c.ctxFunc()

	content, err := yaml.MarshalContext(ctx, c.presets, yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}

	f, err := os.CreateTemp(os.TempDir(), "reldate-presets-*.yaml")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	for {
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath); err != nil {
			return err
		}

		data, err := os.ReadFile(tmpPath)
		if err != nil {
			return err
		}

		// An emptied file cancels the edit.
		if strings.TrimSpace(string(data)) == "" {
			return nil
		}

		presets, loadErr := c.load(ctx, string(data))
		c.logger.TraceContext(
			ctx,
			"editor load attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", loadErr == nil),
		)

		if loadErr == nil {
			c.newPresets = presets

			return nil
		}

		fmt.Fprintf(c.stderr, "\nInvalid presets: %s\n", loadErr)
		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}

		content = data
	}
}

// load decodes and validates an edited catalog.
func (c *editPresetsCommand) load(
	ctx context.Context,
	data string,
) ([]lang.Preset, error) {
	presets, err := lang.LoadPresets(strings.NewReader(data))
	if err != nil {
		return nil, err
	}

	if err := lang.ValidatePresets(ctx, presets, c.opts...); err != nil {
		return nil, err
	}

	return presets, nil
}

// runEditor launches the user's editor on the given file path.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
