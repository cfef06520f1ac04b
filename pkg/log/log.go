// Package log configures the process-wide slog default used by every
// strategist command.
package log

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default logger at the given level. Unknown levels fall
// back to info.
func Setup(logLevel string) {
	var level slog.Level

	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// WithModule returns the default logger tagged with the component name.
func WithModule(module string) *slog.Logger {
	return slog.With("module", module)
}
