package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/reldate/pkg"
)

// defaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}

// presetSearchPath returns the preset catalogs to load, in order: the
// entries of the PATH-like list followed by the catalog in the
// configuration directory. Blank entries are dropped.
func presetSearchPath(list string) []string {
	joined := mung.Make(
		mung.WithSubjectItems(pkg.PresetsFile()),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(filepath.SplitList(list)...),
		mung.WithFilter(func(s string) bool {
			return strings.TrimSpace(s) != ""
		}),
	).String()

	return filepath.SplitList(joined)
}
