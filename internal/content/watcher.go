// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 250 * time.Millisecond

// Reload is delivered after the watched file changed.
// Exactly one of Catalog and Err is set.
type Reload struct {
	Catalog *Catalog
	Err     error
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// Watcher reloads a catalog file when it changes on disk.
//
// The parent directory is watched rather than the file, so editors that save
// by rename are picked up.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.SugaredLogger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending time.Time // zero when nothing is pending
}

// NewWatcher creates a watcher for the catalog at path.
func NewWatcher(path string, debounce time.Duration, log *zap.SugaredLogger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		log:      log,
		watcher:  fw,
	}, nil
}

// Start begins watching. Reloads are sent on the returned channel, which is
// closed when ctx is cancelled or the watcher fails.
func (w *Watcher) Start(ctx context.Context) <-chan Reload {
	out := make(chan Reload, 1)
	go w.run(ctx, out)
	return out
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context, out chan<- Reload) {
	defer close(out)
	defer func() {
		if r := recover(); r != nil {
			w.log.Errorw("content watcher panicked", "panic", r)
		}
	}()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnw("content watcher error", "error", err)

		case <-ticker.C:
			if !w.due() {
				continue
			}
			reload := w.reload()
			select {
			case out <- reload:
			case <-ctx.Done():
				return
			}
		}
	}
}

// due reports whether a pending change has settled, clearing it if so.
func (w *Watcher) due() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		return false
	}
	w.pending = time.Time{}
	return true
}

func (w *Watcher) reload() Reload {
	cat, err := Load(w.path)
	if err != nil {
		w.log.Warnw("content reload failed", "path", w.path, "error", err)
		return Reload{Err: err}
	}
	w.log.Infow("content reloaded", "path", w.path)
	return Reload{Catalog: cat}
}
