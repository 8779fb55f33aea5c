// Package cmd implements the reldate subcommands.
//
// Each command is a kong command struct with a Run(context.Context) error
// method. Values shared across commands travel in the context:
//
//   - [WithContext] stores the parsed [kong.Context].
//   - [WithSettings] stores the zone, clock, week start and preset files.
//   - [WithSourceFiles] stores the files expressions are read from.
//   - [WithOutput] redirects command output (stdout by default).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
