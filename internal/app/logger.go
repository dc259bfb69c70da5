package app

import (
	"io"
	"log/slog"
)

// logLevels maps the accepted -log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ValidLogLevel reports whether s names one of the accepted logging levels.
func ValidLogLevel(s string) bool {
	_, ok := logLevels[s]
	return ok
}

// newLogger creates a new slog.Logger writing to outW. It does not touch the
// global logger, so App instances stay isolated. Unknown level strings fall
// back to info; cli validation rejects them before they get here.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
