package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/rendering"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the PDF whenever the CV data file changes",
	Long: "Renders the CV data file once, then watches it and renders again after every " +
		"change until interrupted. Invalid intermediate saves are reported and skipped.",
	RunE: runWatch,
}

var (
	watchInputFile  string
	watchOutputFile string
	watchTemplate   string
	watchFormat     string
	watchEngine     string
	watchDebounce   time.Duration
)

func init() {
	watchCmd.Flags().StringVarP(&watchInputFile, "in", "i", "", "Path to CV JSON data file (required)")
	watchCmd.Flags().StringVarP(&watchOutputFile, "out", "o", "", "Path to output PDF (required)")
	watchCmd.Flags().StringVarP(&watchTemplate, "template", "t", "", "Template name (default from config)")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "Page format: Letter or A4 (default from config)")
	watchCmd.Flags().StringVar(&watchEngine, "engine", "", "Render engine: native or browser (default from config)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Quiet period before re-rendering")

	_ = watchCmd.MarkFlagRequired("in")
	_ = watchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(watchCmd)
}

// watchOptions configures one watch loop.
type watchOptions struct {
	input    string
	output   string
	template string
	format   string
	debounce time.Duration
	renderer *rendering.Renderer
	logger   *slog.Logger
	out      io.Writer
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newCLILogger(cmd.ErrOrStderr())
	renderer, err := newRenderer(cfg, watchEngine, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndRender(ctx, watchOptions{
		input:    watchInputFile,
		output:   watchOutputFile,
		template: orDefault(watchTemplate, cfg.Render.DefaultTemplate),
		format:   orDefault(watchFormat, cfg.Render.DefaultFormat),
		debounce: watchDebounce,
		renderer: renderer,
		logger:   logger,
		out:      cmd.OutOrStdout(),
	})
}

// watchAndRender renders once, then again after each burst of changes to the
// input file, until ctx is done. The parent directory is watched so editors
// that save by rename are still seen.
func watchAndRender(ctx context.Context, opts watchOptions) error {
	input, err := filepath.Abs(opts.input)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(input), err)
	}

	render := func() {
		if err := renderOnce(ctx, opts); err != nil {
			_, _ = fmt.Fprintf(opts.out, "✗ %v\n", err)
			return
		}
		_, _ = fmt.Fprintf(opts.out, "✓ Rendered %s\n", opts.output)
	}
	render()

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			opts.logger.Debug("watch stopped", "input", input)
			return nil

		case <-timerCh:
			timerCh = nil
			render()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != input || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			opts.logger.Debug("input changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(opts.debounce)
			} else {
				timer.Reset(opts.debounce)
			}
			timerCh = timer.C

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.logger.Error("watcher error", "error", werr)
		}
	}
}

func renderOnce(ctx context.Context, opts watchOptions) error {
	doc, err := readDocument(opts.input)
	if err != nil {
		return err
	}
	pdf, err := opts.renderer.Render(ctx, doc, opts.template, opts.format)
	if err != nil {
		return err
	}
	return writeOutput(opts.output, pdf)
}
