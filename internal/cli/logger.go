package cli

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mwrona/textops/internal/config"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. Reports own
// stdout, so log lines go to stderr or, when a log file is configured, to a
// size-rotated file.
func newLogger(settings *config.Settings, stderr io.Writer) *slog.Logger {
	var level slog.Level
	switch settings.LogLevel {
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

	out := stderr
	if settings.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   settings.LogFile,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   false,
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if settings.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(handler)
}
