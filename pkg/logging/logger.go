// Package logging sets up the structured logger shared by the game and its
// tools.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "OUTRUN_LOG_LEVEL"

// New returns a text logger writing to w at the given level. The
// OUTRUN_LOG_LEVEL environment variable, when set, wins over level.
func New(level string, w io.Writer) *slog.Logger {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel accepts DEBUG, INFO, WARN or ERROR in any case.
// Anything else is INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
