// Package watch keeps a docs tree normalized while it is being edited.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/docfront/internal/checksum"
	"github.com/starford/docfront/internal/fixer"
	"github.com/starford/docfront/internal/models"
	"github.com/starford/docfront/internal/walker"
)

// DefaultDebounce is how long a document must stay quiet before it is fixed.
const DefaultDebounce = time.Second

// EventCallback is called after a watcher-driven fix attempt.
type EventCallback func(res models.FileResult)

// Option configures Watch.
type Option func(*watcher)

type watcher struct {
	exts     []string
	debounce time.Duration
	cb       EventCallback
	ready    func()
}

// WithExtensions sets the document suffixes to follow.
func WithExtensions(exts []string) Option {
	return func(w *watcher) {
		if len(exts) > 0 {
			w.exts = exts
		}
	}
}

// WithDebounce sets the quiet period a document needs before it is fixed.
func WithDebounce(d time.Duration) Option {
	return func(w *watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithCallback registers cb to receive every fix result.
func WithCallback(cb EventCallback) Option {
	return func(w *watcher) {
		w.cb = cb
	}
}

// WithReady registers fn to be called once the whole tree is being watched.
func WithReady(fn func()) Option {
	return func(w *watcher) {
		w.ready = fn
	}
}

// Watch starts an fsnotify watcher on the runner's root and runs fixers, in
// order, on documents that were created or written, until ctx is cancelled.
//
// A document is only fixed once no event has touched it for the debounce
// period, so writers that pause between chunks are not cut off. Events are
// handled one at a time. New directories are added to the watch list and
// documents already inside them are scheduled. Events caused by our own
// writes are recognized by checksum and ignored.
func Watch(ctx context.Context, runner *fixer.Runner, logger *slog.Logger, fixers []fixer.Fixer, opts ...Option) error {
	cfg := &watcher{exts: walker.DefaultExtensions, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(cfg)
	}
	root := runner.Root()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root), slog.Duration("debounce", cfg.debounce))
	if cfg.ready != nil {
		cfg.ready()
	}

	// last checksum written per relative path
	written := make(map[string]string)
	// last event time per absolute path waiting to be fixed
	pending := make(map[string]time.Time)

	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func(d time.Duration) {
		if timer == nil {
			timer = time.NewTimer(d)
			timerCh = timer.C
			return
		}
		timer.Reset(d)
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	touch := func(absPath string) {
		pending[absPath] = time.Now()
		schedule(cfg.debounce)
	}

	handle := func(absPath string) {
		rel, relErr := filepath.Rel(root, absPath)
		if relErr != nil {
			return
		}
		data, readErr := os.ReadFile(absPath)
		if readErr != nil {
			logger.Debug("watcher: read failed", slog.String("path", rel), slog.String("error", readErr.Error()))
			return
		}
		if written[rel] == checksum.Sum(data) {
			return
		}
		res := runner.FixFile(ctx, rel, fixers...)
		if res.Status == models.StatusFixed {
			written[rel] = res.Checksum
		}
		if cfg.cb != nil {
			cfg.cb(res)
		}
	}

	// flush fixes every document that has been quiet long enough and
	// re-arms the timer for the rest.
	flush := func() {
		now := time.Now()
		var next time.Duration
		for p, last := range pending {
			if wait := cfg.debounce - now.Sub(last); wait > 0 {
				if next == 0 || wait < next {
					next = wait
				}
				continue
			}
			delete(pending, p)
			handle(p)
		}
		if next > 0 {
			schedule(next)
		}
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			flush()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			absPath := ev.Name

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					scheduleNewDir(absPath, cfg.exts, logger, touch)
					continue
				}
			}

			if !walker.Match(filepath.Base(absPath), cfg.exts) {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				touch(absPath)
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				delete(pending, absPath)
				if rel, relErr := filepath.Rel(root, absPath); relErr == nil {
					delete(written, rel)
				}
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// scheduleNewDir picks up documents that appeared inside a new directory
// before it was added to the watcher.
func scheduleNewDir(dir string, exts []string, logger *slog.Logger, touch func(string)) {
	seq, err := walker.Walk(dir, exts...)
	if err != nil {
		logger.Debug("watcher: walk new dir failed", slog.String("path", dir), slog.String("error", err.Error()))
		return
	}
	for p, walkErr := range seq {
		if walkErr != nil {
			continue
		}
		touch(p)
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
