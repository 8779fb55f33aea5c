package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/reldate/lang"
	"github.com/ardnew/reldate/log"
	"github.com/ardnew/reldate/zoned"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Settings are the evaluation parameters shared by every command.
type Settings struct {
	Zone zoned.Zone
	// Clock is nil to read the system clock.
	Clock       func() time.Time
	WeekStart   time.Weekday
	PresetFiles []string
}

type settingsKey struct{}

// WithSettings returns a new context.Context carrying s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFrom returns the Settings stored by [WithSettings], or the zero
// Settings (local zone, system clock, weeks starting Sunday).
func settingsFrom(ctx context.Context) Settings {
	s, _ := ctx.Value(settingsKey{}).(Settings)

	return s
}

// Options returns the evaluator options described by s.
func (s Settings) Options() []lang.Option {
	return []lang.Option{
		lang.WithZone(s.Zone),
		lang.WithClock(s.Clock),
		lang.WithWeekStart(s.WeekStart),
		lang.WithLogger(log.Default()),
	}
}

type outputKey struct{}

// WithOutput returns a new context.Context whose commands write to w instead
// of os.Stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

type (
	sourceFilesKey struct{}
	sourceFiles    struct {
		read     []*os.File
		hasStdin bool
	}

	SourceFiles interface {
		IsZero() bool
		Stdin() io.Reader
		io.ReadCloser
	}
)

// IsZero reports whether there are no source files.
func (s *sourceFiles) IsZero() bool { return len(s.read) == 0 && !s.hasStdin }

// Stdin returns os.Stdin if stdin was included as a source, or nil otherwise.
func (s *sourceFiles) Stdin() io.Reader {
	if s.hasStdin {
		return os.Stdin
	}

	return nil
}

// Read implements io.Reader by reading from all source files in order,
// including stdin if present.
func (s *sourceFiles) Read(p []byte) (n int, err error) {
	readers := make([]io.Reader, 0, len(s.read)+1)
	for _, f := range s.read {
		readers = append(readers, f)
	}

	if s.hasStdin {
		readers = append(readers, os.Stdin)
	}

	return io.MultiReader(readers...).Read(p)
}

// Close closes every opened source file. Stdin is left open.
func (s *sourceFiles) Close() error {
	errs := make([]error, 0, len(s.read))
	for _, f := range s.read {
		errs = append(errs, f.Close())
	}

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// WithSourceFiles returns a new context.Context containing an [io.Reader] that
// reads expressions from the given source files.
//
// The function deduplicates readers by resolving symlinks and comparing device/
// inode pairs. All occurrences of "-" are replaced with a single stdin reader.
// The stdin reader is placed last so it reads after all regular files.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, buildSourceFiles(sources))
}

// buildSourceFiles constructs a SourceFiles from the given source paths.
func buildSourceFiles(sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	var srcs sourceFiles

	srcs.read = make([]*os.File, 0, len(sources))
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			srcs.hasStdin = true

			continue
		}

		file, ok := openUniqueFile(src, seen)
		if !ok {
			continue
		}

		srcs.read = append(srcs.read, file)
	}

	// Stdin may also have been named as a file (e.g. /dev/stdin).
	if _, ok := seen[stdinKey]; ok {
		srcs.hasStdin = true
	}

	if len(srcs.read) == 0 && !srcs.hasStdin {
		return nil
	}

	return &srcs
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It resolves symlinks and uses device/inode to detect duplicates.
func openUniqueFile(path string, seen map[fileKey]struct{}) (*os.File, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return nil, false
	}

	if _, exists := seen[key]; exists {
		return nil, false
	}

	seen[key] = struct{}{}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false
	}

	return file, true
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	if info == nil {
		return key, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// sourceFilesFrom retrieves the SourceFiles stored in ctx by WithSourceFiles.
// Returns nil if none were stored.
func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}

// inputs returns the expressions named on the command line followed by the
// lines of every source file. An argument of "-", or no input at all, reads
// stdin. Blank lines and lines starting with '#' are skipped.
func inputs(ctx context.Context, args []string) ([]string, error) {
	var (
		exprs     []string
		wantStdin bool
	)

	for _, arg := range args {
		if arg == stdinSource {
			wantStdin = true

			continue
		}

		exprs = append(exprs, arg)
	}

	var readers []io.Reader

	if src := sourceFilesFrom(ctx); src != nil && !src.IsZero() {
		defer src.Close()

		readers = append(readers, src)
		wantStdin = wantStdin && src.Stdin() == nil
	} else if len(exprs) == 0 {
		wantStdin = true
	}

	if wantStdin {
		readers = append(readers, os.Stdin)
	}

	for _, r := range readers {
		lines, err := readLines(r)
		if err != nil {
			return nil, ErrReadInput.Wrap(err)
		}

		exprs = append(exprs, lines...)
	}

	return exprs, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scan.Err()
}
