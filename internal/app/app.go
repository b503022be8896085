package app

import (
	"io"
	"log/slog"

	"github.com/vk/seqdoc/internal/engine"
	"github.com/vk/seqdoc/internal/expr"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	translator *engine.Translator
}

// NewApp builds an App. Results are written to outW and log records to logW.
// Expressions are evaluated as HCL.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	translator := engine.New(expr.NewHCLEvaluator(), engine.WithMaxSteps(cfg.MaxSteps))
	logger.Debug("Translator configured.", "max_steps", cfg.MaxSteps)

	return &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		translator: translator,
	}
}
