package driving

import (
	"context"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

// ScanService performs an end-to-end scan: read input, compute the
// entropy sequence, detect edges, build and optionally persist the
// report.
type ScanService interface {
	// Scan analyses the named input with the given options.
	Scan(ctx context.Context, path string, opts domain.ScanOptions) (domain.ScanResult, error)
}

// WatchService re-runs scans whenever the input file changes.
type WatchService interface {
	// Run performs an initial scan and then rescans on every change
	// event, invoking fn with each result. Blocks until the context
	// is cancelled or watching fails.
	Run(ctx context.Context, path string, opts domain.ScanOptions, fn func(domain.ScanResult)) error
}
