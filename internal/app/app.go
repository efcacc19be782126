package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/utc/internal/clock"
	"github.com/vk/utc/internal/config"
	"github.com/vk/utc/internal/ctxlog"
)

// App encapsulates the application's dependencies and configuration for
// one conversion run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	clock  clock.Clock
	config *Config
}

// NewApp is the constructor for the main application. It loads the
// defaults file through the provided loader, merges it under the
// flag-level configuration, and builds an isolated logger writing to
// logW so outW stays reserved for the result line.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, clk clock.Clock) (*App, error) {
	// Bootstrap logger from the flag-level settings; the defaults file
	// may still adjust them below.
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	path := appConfig.ConfigPath
	if path == "" {
		path = defaultConfigPath()
	}
	model, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load defaults file: %w", err)
	}

	merged, err := NewConfig(appConfig.withDefaults(model))
	if err != nil {
		return nil, fmt.Errorf("defaults file %s: %w", path, err)
	}
	if merged.LogLevel != appConfig.LogLevel || merged.LogFormat != appConfig.LogFormat {
		logger = newLogger(merged.LogLevel, merged.LogFormat, logW)
	}
	logger.Debug("Configuration merged.", "time_format", merged.TimeFormat, "log_level", merged.LogLevel, "log_format", merged.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		clock:  clk,
		config: merged,
	}, nil
}

// Config returns the merged configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
