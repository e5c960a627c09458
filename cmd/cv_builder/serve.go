package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/server"
	"github.com/jonathan/cv-builder/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes session-based endpoints for editing, previewing and exporting CVs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.App.HTTP.Port = servePort
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --port: %w", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("engine", cfg.Render.Engine),
		slog.String("default_template", cfg.Render.DefaultTemplate),
		slog.String("default_format", cfg.Render.DefaultFormat),
		slog.Duration("session_idle_timeout", cfg.Session.IdleTimeout),
		slog.String("log_level", cfg.App.LogLevel.String()))

	renderer, err := newRenderer(cfg, "", logger)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:            cfg.App.HTTP.Port,
		DefaultTemplate: cfg.Render.DefaultTemplate,
		DefaultFormat:   cfg.Render.DefaultFormat,
		IdleTimeout:     cfg.Session.IdleTimeout,
		CleanupInterval: cfg.Session.CleanupInterval,
		RateLimit:       ratelimit.LoadConfig(),
	}, renderer, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
