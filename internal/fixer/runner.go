package fixer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/docfront/internal/apperr"
	"github.com/starford/docfront/internal/checksum"
	"github.com/starford/docfront/internal/models"
	"github.com/starford/docfront/internal/storage"
	"github.com/starford/docfront/internal/walker"
)

// Runner drives fixers over the documents below a root directory.
type Runner struct {
	root   string
	exts   []string
	logger *slog.Logger
	dryRun bool
	store  storage.Provider
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithDryRun computes changes without writing them.
func WithDryRun() RunnerOption {
	return func(r *Runner) {
		r.dryRun = true
	}
}

// WithStorage makes the runner read and write through p instead of a
// storage.FS rooted at the runner's root.
func WithStorage(p storage.Provider) RunnerOption {
	return func(r *Runner) {
		r.store = p
	}
}

// NewRunner creates a Runner for root. Empty exts means walker.DefaultExtensions.
func NewRunner(root string, exts []string, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{root: root, exts: exts, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the directory the runner scans.
func (r *Runner) Root() string {
	return r.root
}

// Run applies f to every matching document. A missing or unreadable root is
// reported and yields an empty report. Per-file failures are recorded and
// never stop the batch; only ctx cancellation does.
func (r *Runner) Run(ctx context.Context, f Fixer) (*models.Report, error) {
	report := &models.Report{Fixer: f.Name(), Root: r.root, DryRun: r.dryRun}

	r.logger.Info("scanning", slog.String("root", r.root), slog.String("fixer", f.Name()))

	seq, err := walker.Walk(r.root, r.exts...)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			r.logger.Warn("directory not found", slog.String("root", r.root))
			report.RootMissing = true
			return report, nil
		}
		r.logger.Error("cannot read directory", slog.String("root", r.root), slog.String("error", err.Error()))
		report.RootErr = err
		return report, nil
	}
	store, err := r.storage()
	if err != nil {
		r.logger.Error("cannot read directory", slog.String("root", r.root), slog.String("error", err.Error()))
		report.RootErr = err
		return report, nil
	}

	for p, walkErr := range seq {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if walkErr != nil {
			res := models.FileResult{Path: p, Status: models.StatusFailed, Err: walkErr}
			r.log(res)
			report.Add(res)
			continue
		}
		rel, err := store.Rel(p)
		if err != nil {
			res := models.FileResult{Path: p, Status: models.StatusFailed, Err: err}
			r.log(res)
			report.Add(res)
			continue
		}
		res := r.process(store, rel, f)
		r.log(res)
		report.Add(res)
	}

	r.logger.Info("done",
		slog.String("fixer", f.Name()),
		slog.Int("fixed", report.Count(models.StatusFixed)),
		slog.Int("unchanged", report.Count(models.StatusUnchanged)),
		slog.Int("skipped", report.Count(models.StatusSkipped)),
		slog.Int("failed", report.Count(models.StatusFailed)),
		slog.Bool("dry_run", r.dryRun))

	return report, nil
}

// FixFile applies fixers in order to one document (relative to the root) and
// writes the combined result once.
func (r *Runner) FixFile(ctx context.Context, rel string, fixers ...Fixer) models.FileResult {
	if err := ctx.Err(); err != nil {
		return models.FileResult{Path: rel, Status: models.StatusFailed, Err: err}
	}
	store, err := r.storage()
	if err != nil {
		return models.FileResult{Path: rel, Status: models.StatusFailed, Err: err}
	}
	res := r.process(store, rel, fixers...)
	r.log(res)
	return res
}

func (r *Runner) storage() (storage.Provider, error) {
	if r.store != nil {
		return r.store, nil
	}
	return storage.NewFS(r.root)
}

// process is the per-file boundary: every error is turned into a result.
func (r *Runner) process(store storage.Provider, rel string, fixers ...Fixer) models.FileResult {
	data, err := store.Read(rel)
	if err != nil {
		return models.FileResult{Path: rel, Status: models.StatusFailed, Err: err}
	}

	doc := models.Document{Path: rel, Content: string(data)}
	changed := false
	var reasons []string
	for _, f := range fixers {
		ch, err := f.Apply(doc.Content)
		if err != nil {
			return models.FileResult{
				Path:   rel,
				Status: models.StatusFailed,
				Err:    fmt.Errorf("%s: %w", f.Name(), err),
			}
		}
		if ch.SkipReason != "" {
			reasons = append(reasons, ch.SkipReason)
			continue
		}
		if ch.Changed {
			doc.Content = ch.Content
			changed = true
		}
	}

	if !changed {
		res := models.FileResult{Path: rel, Status: models.StatusUnchanged, Checksum: checksum.Sum(data)}
		if len(reasons) == len(fixers) && len(reasons) > 0 {
			res.Status = models.StatusSkipped
			res.Reason = reasons[0]
		}
		return res
	}

	if r.dryRun {
		return models.FileResult{Path: rel, Status: models.StatusFixed, Checksum: checksum.Sum(data)}
	}

	// The file may have been edited since it was read; never overwrite that.
	current, err := store.Read(rel)
	if err != nil {
		return models.FileResult{Path: doc.Path, Status: models.StatusFailed, Err: err}
	}
	if checksum.Sum(current) != checksum.Sum(data) {
		return models.FileResult{
			Path:     doc.Path,
			Status:   models.StatusSkipped,
			Reason:   "changed while fixing",
			Checksum: checksum.Sum(current),
		}
	}

	out := []byte(doc.Content)
	if err := store.Write(doc.Path, out); err != nil {
		return models.FileResult{Path: doc.Path, Status: models.StatusFailed, Err: err}
	}
	return models.FileResult{Path: doc.Path, Status: models.StatusFixed, Checksum: checksum.Sum(out)}
}

func (r *Runner) log(res models.FileResult) {
	path := slog.String("path", res.Path)
	switch res.Status {
	case models.StatusFixed:
		if r.dryRun {
			r.logger.Info("would fix", path)
			return
		}
		r.logger.Info("fixed", path)
	case models.StatusSkipped:
		r.logger.Info("skipping", path, slog.String("reason", res.Reason))
	case models.StatusFailed:
		r.logger.Error("error processing", path, slog.String("error", res.Err.Error()))
	default:
		r.logger.Debug("unchanged", path)
	}
}
