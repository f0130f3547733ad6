package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/handlers"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	catalog *handlers.Catalog
}

// NewApp is the constructor for the main application. Results go to outW,
// logs to logW. Without modules, the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...handlers.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	catalog := handlers.NewWith(modules...)
	ctxlog.FromContext(ctx).Debug("All Go modules registered.", "modules", len(modules), "functions", catalog.Names())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		catalog: catalog,
	}
}

// Catalog returns the application's function catalog. This is primarily for testing.
func (a *App) Catalog() *handlers.Catalog {
	return a.catalog
}
