package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/ports/driven"
	"github.com/ali-raheem/shannon/internal/core/ports/driving"
	"github.com/ali-raheem/shannon/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// RescanRate caps rescans at two per second. Editors and build tools
// fire bursts of write events for a single logical change.
const RescanRate = 2

// WatchService performs an initial scan and rescans whenever the
// watched file changes.
type WatchService struct {
	scan    driving.ScanService
	watcher driven.FileWatcher
	limiter *rate.Limiter
}

// NewWatchService creates a new watch service.
func NewWatchService(scan driving.ScanService, watcher driven.FileWatcher) *WatchService {
	return &WatchService{
		scan:    scan,
		watcher: watcher,
		limiter: rate.NewLimiter(rate.Limit(RescanRate), 1),
	}
}

// Run blocks until the context is cancelled, invoking fn with the
// result of the initial scan and of every rescan. A rescan that fails
// (for example the file is mid-replace) is logged and skipped; the
// watch continues.
func (w *WatchService) Run(ctx context.Context, path string, opts domain.ScanOptions, fn func(domain.ScanResult)) error {
	result, err := w.scan.Scan(ctx, path, opts)
	if err != nil {
		return err
	}
	fn(result)

	events, err := w.watcher.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			logger.Debug("Change detected, rescanning %s", path)
			result, err := w.scan.Scan(ctx, path, opts)
			if err != nil {
				logger.Warn("Rescan failed: %v", err)
				continue
			}
			fn(result)
		}
	}
}
