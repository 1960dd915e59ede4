// Package logger builds the application's slog.Logger from
// configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New initializes a slog logger with the given level ("debug", "info",
// "warn", "error") and format ("text" or "json"). A nil output writes
// to stderr so review markdown on stdout stays clean.
func New(level, format string, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
