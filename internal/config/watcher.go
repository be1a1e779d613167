package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher wraps fsnotify to watch files and emit debounced change notifications.
// The parent directory is watched so editors that replace the file on save
// are still picked up.
type Watcher struct {
	watcher  *fsnotify.Watcher
	paths    []string
	events   chan struct{}
	errors   chan error
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	watching bool
}

// NewWatcher creates a new file watcher for the specified paths
func NewWatcher(ctx context.Context, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	watcherCtx, cancel := context.WithCancel(ctx)

	return &Watcher{
		watcher: fsw,
		paths:   paths,
		events:  make(chan struct{}, 1),
		errors:  make(chan error, 1),
		ctx:     watcherCtx,
		cancel:  cancel,
	}, nil
}

// Start begins watching the configured paths with debouncing
func (w *Watcher) Start(debounce time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watching {
		return fmt.Errorf("watcher already started")
	}

	for _, path := range w.paths {
		dir := filepath.Dir(path)
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.watching = true
	go w.processEvents(debounce)

	return nil
}

// processEvents coalesces bursts of writes into a single notification
func (w *Watcher) processEvents(debounce time.Duration) {
	defer close(w.events)
	defer close(w.errors)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isWatchedFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			select {
			case w.events <- struct{}{}:
			default:
				// event already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.ctx.Done():
				return
			}
		}
	}
}

// isWatchedFile checks if the given path is one of the watched files
func (w *Watcher) isWatchedFile(path string) bool {
	for _, watched := range w.paths {
		if filepath.Base(path) == filepath.Base(watched) {
			return true
		}
	}
	return false
}

// Events returns the channel for receiving debounced file change notifications
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors returns the channel for receiving watcher errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Stop stops the watcher and cleans up resources
func (w *Watcher) Stop() error {
	w.mu.Lock()
	w.watching = false
	w.mu.Unlock()

	w.cancel()
	return w.watcher.Close()
}
