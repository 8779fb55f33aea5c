// Package cli contains the command line interface for reldate.
//
// # Usage
//
// Expressions given without a subcommand are evaluated:
//
//	reldate now-1d/d now/w
//	reldate --tz Europe/Berlin --week-start monday explain 'now-1M/M'
//	reldate --now 2025-12-01T12:00:00Z check now-5d 'now+2x'
//
// # Global Options
//
//   - --tz, -z: Time zone for evaluation (IANA name, utc or local)
//   - --now: Fixed reference time instead of the system clock
//   - --week-start: First day of the week used by the w unit
//   - --presets: Preset catalog files, separated like PATH
//   - --source, -s: Read expressions from files, one per line
//
// # Configuration
//
// Flag defaults are read from a flat YAML file in the configuration directory
// (see [pkg.ConfigFile]), written by the init command. Keys are flag names
// with either hyphens or underscores:
//
//	tz: Europe/Berlin
//	week_start: monday
//	log-level: debug
//
// Command-line flags override configuration values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o reldate .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/reldate/pprof)
package cli
