package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PipelinePaths []string // hcl files or directories
	InputPath     string   // csv or xlsx; optional
	OutputPath    string   // csv or xlsx; empty writes csv to the output writer

	// Columns overrides the pipeline's output selection.
	Columns  []string
	PlanOnly bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.PipelinePaths) == 0 {
		return nil, errors.New("at least one pipeline path is required")
	}
	for _, path := range []string{cfg.InputPath, cfg.OutputPath} {
		if path == "" {
			continue
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".csv", ".xlsx":
		default:
			return nil, fmt.Errorf("unsupported table file %q: expected .csv or .xlsx", path)
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
