// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/starford/docfront/internal/fixer"
	"github.com/starford/docfront/internal/models"
	"github.com/starford/docfront/internal/watch"
)

// Commands.
const (
	CommandInsertTitles = "insert-titles"
	CommandQuoteTitles  = "quote-titles"
	CommandCheck        = "check"
	CommandWatch        = "watch"
)

// ErrCheckFailed is returned by a strict check when documents are invalid.
var ErrCheckFailed = errors.New("frontmatter check failed")

// Run executes the selected command with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{output: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := newLogger(cfg.App, app.output)
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("command", app.command),
		slog.String("docs_root", cfg.Docs.Root),
		slog.Any("extensions", cfg.Docs.Extensions),
		slog.Bool("dry_run", app.dryRun),
		slog.String("log_level", cfg.App.LogLevel.String()))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runnerOpts []fixer.RunnerOption
	if app.dryRun {
		runnerOpts = append(runnerOpts, fixer.WithDryRun())
	}
	runner := fixer.NewRunner(cfg.Docs.Root, cfg.Docs.Extensions, logger, runnerOpts...)

	switch app.command {
	case CommandInsertTitles:
		_, err := runner.Run(ctx, fixer.Inserter{})
		return err

	case CommandQuoteTitles:
		_, err := runner.Run(ctx, fixer.QuoteFixer{})
		return err

	case CommandCheck:
		report, err := runner.Run(ctx, fixer.Checker{})
		if err != nil {
			return err
		}
		if failed := report.Failed(); app.strict && len(failed) > 0 {
			return fmt.Errorf("%w: %d invalid documents", ErrCheckFailed, len(failed))
		}
		return nil

	case CommandWatch:
		return runWatch(ctx, runner, cfg, logger)

	default:
		return fmt.Errorf("unknown command %q", app.command)
	}
}

// runWatch normalizes the whole tree once, then follows edits until the
// context is cancelled.
func runWatch(ctx context.Context, runner *fixer.Runner, cfg *Config, logger *slog.Logger) error {
	fixers := []fixer.Fixer{fixer.Inserter{}, fixer.QuoteFixer{}}
	for _, f := range fixers {
		report, err := runner.Run(ctx, f)
		if err != nil {
			return err
		}
		if report.RootMissing {
			return fmt.Errorf("watch: docs root %s does not exist", cfg.Docs.Root)
		}
		if report.RootErr != nil {
			return fmt.Errorf("watch: %w", report.RootErr)
		}
	}

	return watch.Watch(ctx, runner, logger, fixers,
		watch.WithExtensions(cfg.Docs.Extensions),
		watch.WithDebounce(cfg.Watch.Debounce),
		watch.WithCallback(func(res models.FileResult) {
			logger.Debug("watcher: handled", slog.String("path", res.Path), slog.String("status", res.Status.String()))
		}))
}

func newLogger(cfg ApplicationConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
