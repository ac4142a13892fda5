// Package log configures the process-wide log/slog logger for humantime.
package log

import (
	"io"
	"log/slog"
)

// Setup installs a text slog handler writing to w as the default logger.
//
//   - quiet:   WARN and above
//   - default: INFO and above
//   - verbose: DEBUG and above
//
// Quiet wins when both flags are set.
func Setup(w io.Writer, verbose, quiet bool) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})))
}

// Level maps the verbosity flags to a slog level.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
