// Package memory provides in-memory implementations of driven port
// interfaces, used by tests and when persistence is disabled.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps scan reports in memory.
type HistoryStore struct {
	mu      sync.RWMutex
	reports map[string]domain.ScanReport
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		reports: make(map[string]domain.ScanReport),
	}
}

// Save stores a scan report.
func (s *HistoryStore) Save(_ context.Context, report domain.ScanReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports[report.ID] = report
	return nil
}

// Get retrieves a report by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (domain.ScanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	if !ok {
		return domain.ScanReport{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return report, nil
}

// List returns the most recent reports, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.ScanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]domain.ScanReport, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID < reports[j].ID
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

// Clear removes all stored reports.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = make(map[string]domain.ScanReport)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error {
	return nil
}
