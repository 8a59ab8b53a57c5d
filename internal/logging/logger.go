// Package logging provides leveled logging for the arbitrary command-line tools.
// Library packages do not log; only commands build a logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is a custom slog level below Debug for per-value output.
const LevelTrace = slog.LevelDebug - 4

// EnvLevel names the environment variable consulted by LevelFromEnv.
const EnvLevel = "ARBSAMPLE_LOG_LEVEL"

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromEnv returns the level name in EnvLevel, or fallback when unset.
func LevelFromEnv(fallback string) string {
	if v, ok := os.LookupEnv(EnvLevel); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: labelTrace,
	}))
}

// labelTrace prints LevelTrace as TRACE instead of slog's DEBUG-4.
func labelTrace(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelTrace {
		attr.Value = slog.StringValue("TRACE")
	}
	return attr
}
