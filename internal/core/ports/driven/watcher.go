package driven

import "context"

// FileWatcher reports modifications to a single file. Used by watch
// mode to trigger rescans.
type FileWatcher interface {
	// Watch begins watching the named file and returns a channel that
	// receives a value each time the file changes. The channel is
	// closed when the context is cancelled or the watcher is closed.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)

	// Close stops watching and releases resources.
	Close() error
}
