package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mwrona/textops/internal/commands"
	"github.com/mwrona/textops/internal/config"
	"github.com/mwrona/textops/internal/ctxlog"
	"github.com/mwrona/textops/internal/engine"
)

// Run executes one textops invocation: load the settings, build the logger,
// feed the raw argument tokens to the engine, and print the rendered report
// to stdout. Failures surface as report lines or log entries, never as a
// non-zero exit, so Run has nothing to return.
func Run(ctx context.Context, args []string, stdout io.Writer) {
	settings, err := config.Load()
	if err != nil {
		// The default logger is still installed at this point.
		slog.Warn("Settings rejected, continuing with defaults.", "error", err)
		settings = config.Default()
	}

	logger := newLogger(settings, os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "level", settings.LogLevel, "format", settings.LogFormat)

	report := NewEngine().Execute(ctx, args)

	if _, err := io.WriteString(stdout, newRenderer(settings.Color).Render(report)); err != nil {
		logger.Error("Writing the report failed.", "error", err)
	}
}

// NewEngine assembles an engine with the full reporting command set.
func NewEngine() *engine.Engine {
	return engine.New().
		Add(commands.CountChars{}).
		Add(commands.CountDigits{}).
		Add(commands.CountLines{}).
		Add(commands.CountNumbers{}).
		Add(commands.CountWords{}).
		Add(commands.ShowAnagrams{}).
		Add(commands.ShowFileSize{}).
		Add(commands.ShowPalindromes{}).
		Add(commands.ShowWords{}).
		Add(commands.ShowWordsReverse{}).
		Add(commands.ConsiderLength{})
}
