package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// debugBinary matches the executable names delve gives its builds.
var debugBinary = regexp.MustCompile(`^__debug_bin\d*$`)

// Prefix returns the directory name reldate uses under the user's
// configuration and cache roots. It is derived from the running executable,
// so a renamed binary keeps its own config.yaml, presets.yaml and history.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		exe, err := os.Executable()
		if err != nil {
			exe = os.Args[0]
		}

		return prefixOf(exe)
	},
)

// prefixOf reduces an executable path to a directory name. Delve builds map
// to [Name], leading dots are dropped, and an empty result is [Name].
func prefixOf(exe string) string {
	base := strings.TrimLeft(filepath.Base(exe), ".")
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if base == "" || debugBinary.MatchString(base) {
		return Name
	}

	return base
}

// ConfigDir returns the directory holding config.yaml and presets.yaml.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
	},
)

// CacheDir returns the directory holding the prompt history and profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
	},
)

// userDir returns the platform root from lookup. Without one it falls back
// to hidden under the home directory, then to the working directory.
func userDir(lookup func() (string, error), hidden string) string {
	if dir, err := lookup(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}

// ConfigFile returns the path of the YAML configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// PresetsFile returns the path of the user's preset catalog.
func PresetsFile() string {
	return filepath.Join(ConfigDir(), "presets.yaml")
}

// HistoryFile returns the path of the interactive prompt's history.
func HistoryFile() string {
	return filepath.Join(CacheDir(), "history")
}
