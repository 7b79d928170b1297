package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	runID  string
}

// NewApp is the constructor for the main application. Operator-facing
// messages go to outW; log records go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		runID:  runID,
	}
}

// RunID returns the identifier attached to every log record of this run.
func (a *App) RunID() string {
	return a.runID
}
