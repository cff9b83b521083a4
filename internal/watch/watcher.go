// Package watch re-runs work when an input file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"advent/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long writes must settle before onChange runs.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches one file. Editors often replace files instead of writing
// them in place, so the parent directory is watched and events are filtered
// by name.
type Watcher struct {
	path     string
	dir      string
	debounce time.Duration
	onChange func(ctx context.Context)

	ready     chan struct{}
	readyOnce sync.Once

	mu    sync.Mutex
	stats Stats
}

// Stats counts watcher activity.
type Stats struct {
	Events   int
	Triggers int
	Errors   int
}

// New returns a watcher for path. A debounce of zero uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange func(ctx context.Context)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		onChange: onChange,
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once the watch is registered.
func (w *Watcher) Ready() <-chan struct{} { return w.ready }

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run blocks until ctx is cancelled, calling onChange after each settled
// burst of writes to the file.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.For(logging.FromContext(ctx), logging.CategoryWatch)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.readyOnce.Do(func() { close(w.ready) })
	log.Debug("watching", zap.String("path", w.path), zap.Duration("debounce", w.debounce))

	tick := max(w.debounce/4, 10*time.Millisecond)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("event", zap.String("op", event.Op.String()))
			w.mu.Lock()
			w.stats.Events++
			w.mu.Unlock()
			pending = time.Now()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < w.debounce {
				continue
			}
			pending = time.Time{}
			w.mu.Lock()
			w.stats.Triggers++
			w.mu.Unlock()
			w.onChange(ctx)
		}
	}
}
