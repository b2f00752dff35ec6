package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/nblaunch/internal/backend"
	"github.com/vk/nblaunch/internal/config"
	"github.com/vk/nblaunch/internal/ctxlog"
)

// App encapsulates the launcher's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	defaults *config.Model
	launcher backend.Launcher
}

// NewApp is the constructor for the launcher. It configures an isolated
// logger, loads the defaults file, and resolves the requested backend.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load launcher defaults: %w", err)
	}
	logger.Debug("Launcher defaults loaded.", "backends", len(model.Backends))

	name := appConfig.Notebook
	if name == "default" && model.DefaultNotebook != "" {
		name = model.DefaultNotebook
	}

	launcher, err := backend.Resolve(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("Backend resolved.", "name", launcher.Name())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		defaults: model,
		launcher: launcher,
	}, nil
}

// Launcher returns the resolved backend. This is primarily for testing.
func (a *App) Launcher() backend.Launcher {
	return a.launcher
}
