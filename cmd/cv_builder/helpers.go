package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/interchange"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
)

// loadConfig reads --config when given and falls back to the defaults.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.LoadConfig(configPath)
}

// newCLILogger logs to w at warn level, or debug with --verbose.
func newCLILogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newRenderer builds a renderer for engine, or the configured engine when
// engine is empty.
func newRenderer(cfg *config.Config, engine string, logger *slog.Logger) (*rendering.Renderer, error) {
	if engine == "" {
		engine = cfg.Render.Engine
	}
	e, err := rendering.NewEngine(engine, cfg.Render.Compress, cfg.Render.Browser.ChromePath, cfg.Render.Browser.Timeout)
	if err != nil {
		return nil, err
	}
	if be, ok := e.(*rendering.BrowserEngine); ok {
		be.Logger = logger
	}
	return rendering.NewRenderer(e, logger), nil
}

// readDocument imports an interchange file.
func readDocument(path string) (*types.CVDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return interchange.Import(data)
}

// orDefault returns value unless it is empty.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
