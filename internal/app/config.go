package app

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all the necessary configuration for an App instance to run.
// It is built once at process start and not modified afterwards.
type Config struct {
	InputPath  string
	PriceFloor float64

	LogFormat string
	LogLevel  string
}

// LogFormats lists the accepted --log-format values.
var LogFormats = []string{"text", "json"}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
