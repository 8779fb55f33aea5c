// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("evaluated", slog.String("text", "now-5m"))
//
// Options configure level, format, timestamps, caller info and colors:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithPretty(false))
//
// [Logger.Wrap] derives a reconfigured copy and [Logger.With] a copy with
// extra attributes. The zero [Logger] discards everything, so libraries can
// accept one without forcing callers to configure logging.
//
// # Levels
//
// Besides the slog levels there is [LevelTrace], below [LevelDebug], used
// for step-by-step evaluation detail.
//
// # Package-level logger
//
// The functions [Trace], [Debug], [Info], [Warn] and [Error] (and their
// Context variants) use a package-level logger writing to standard error.
// [Config] reconfigures it; [Default] returns it.
//
// Context-unaware functions pass [DefaultContextProvider] (which returns
// [context.TODO]) to their context-aware counterparts.
package log
