// Package logging builds the diagnostic logger for copy-assets.
// Diagnostics go to stderr through charmbracelet/log acting as a slog
// handler; user-facing status lines are printed by the cli package.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/sagesearch/copy-assets/internal/domain"
)

// New returns a slog.Logger writing human-readable entries to w.
// Entries below level are dropped.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           toCharmLevel(level),
		Prefix:          "copy-assets",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return slog.New(handler)
}

// Discard returns a logger that drops every entry.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidateLevel returns domain.ErrInvalidLogLevel for anything ParseLevel
// would silently map to the default.
func ValidateLevel(levelStr string) error {
	switch levelStr {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%q: %w", levelStr, domain.ErrInvalidLogLevel)
	}
}

func toCharmLevel(level slog.Level) charmlog.Level {
	switch {
	case level <= slog.LevelDebug:
		return charmlog.DebugLevel
	case level <= slog.LevelInfo:
		return charmlog.InfoLevel
	case level <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
