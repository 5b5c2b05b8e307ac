// Package watch provides an fsnotify-based implementation of the
// FileWatcher port for watch mode.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ali-raheem/shannon/internal/core/ports/driven"
	"github.com/ali-raheem/shannon/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher reports modifications to a single file using fsnotify.
// The parent directory is watched rather than the file itself, so
// editors that replace the file (write temp, rename over) are still
// seen.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// New creates a new file watcher.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{fsw: fsw}, nil
}

// Watch begins watching the named file. The returned channel receives
// a value for every write, create or rename touching the file and is
// closed when the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	go w.forward(ctx, abs, changes)
	return changes, nil
}

// forward filters directory events down to the target file.
func (w *Watcher) forward(ctx context.Context, target string, changes chan<- struct{}) {
	defer close(changes)

	relevant := fsnotify.Write | fsnotify.Create | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Name != target || !event.Op.Has(relevant) {
				continue
			}
			// Coalesce: a pending notification covers this event too.
			select {
			case changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
