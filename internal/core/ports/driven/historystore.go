package driven

import (
	"context"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

// HistoryStore persists scan reports so past scans can be compared.
type HistoryStore interface {
	// Save stores a scan report.
	Save(ctx context.Context, report domain.ScanReport) error

	// Get retrieves a report by ID.
	// Returns domain.ErrNotFound if no such report exists.
	Get(ctx context.Context, id string) (domain.ScanReport, error)

	// List returns the most recent reports, newest first.
	// A limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.ScanReport, error)

	// Clear removes all stored reports.
	Clear(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}
