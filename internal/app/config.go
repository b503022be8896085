package app

import (
	"errors"
	"fmt"

	"github.com/vk/seqdoc/internal/document"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DocumentPath string
	Format       string // auto, json, yaml or hcl

	LogFormat    string
	LogLevel     string
	MaxSteps     int // 0 disables the limit
	PrintGlobals bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}
	format, err := document.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = string(format)

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps must not be negative, got %d", cfg.MaxSteps)
	}
	return &cfg, nil
}
