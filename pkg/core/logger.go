// pkg/core/logger.go
package core

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a slog.Logger writing to w. format "json" selects the
// JSON handler; anything else is text. Unknown levels fall back to info.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
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
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Logger returns the logger described by the configuration. Debug forces
// the debug level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := c.LogLevel
	if c.Debug {
		level = "debug"
	}
	return NewLogger(level, c.LogFormat, w)
}
