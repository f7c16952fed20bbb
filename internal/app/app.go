package app

import (
	"io"
	"log/slog"

	"github.com/vk/priorspec/internal/config"
	"github.com/vk/priorspec/internal/prior"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader

	// tables holds every prior table loaded during Run, keyed by the
	// priors block label ("default" in direct mode). The HTTP endpoint
	// reads from it after loading completes.
	tables map[string]*prior.Table
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
		tables: make(map[string]*prior.Table),
	}
}

// Tables returns the loaded prior tables. This is primarily for testing.
func (a *App) Tables() map[string]*prior.Table {
	return a.tables
}
