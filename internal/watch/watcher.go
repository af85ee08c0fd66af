// Package watch re-runs a study whenever the dataset file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"statlab/internal/logging"
)

// Watcher monitors one dataset file and invokes a rerun callback on change.
// Editors save in bursts, so events are debounced per path.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	rerun       func(ctx context.Context) error
	debounceDur time.Duration
	lastEvent   map[string]time.Time
	doneCh      chan struct{}
	running     bool
}

// New creates a watcher for the given dataset path.
func New(path string, rerun func(ctx context.Context) error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fsw,
		path:        path,
		rerun:       rerun,
		debounceDur: 500 * time.Millisecond,
		lastEvent:   make(map[string]time.Time),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Blocks until ctx is cancelled or Stop is called.
// The containing directory is watched rather than the file itself because
// many editors replace files on save, which drops a file-level watch.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	logging.Watch("watching %s for changes to %s", dir, filepath.Base(w.path))

	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Get(logging.CategoryWatch).Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	now := time.Now()
	if last, ok := w.lastEvent[event.Name]; ok && now.Sub(last) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.lastEvent[event.Name] = now
	w.mu.Unlock()

	logging.Watch("dataset changed (%s), re-running study", event.Op)
	if err := w.rerun(ctx); err != nil {
		logging.Get(logging.CategoryWatch).Error("rerun failed: %v", err)
	}
}

// Stop closes the underlying watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	w.watcher.Close()
	if running {
		<-w.doneCh
	}
}
