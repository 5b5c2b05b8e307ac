package cli

import (
	"context"

	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/services"
)

// mockScanService is a mock implementation of driving.ScanService.
type mockScanService struct {
	result   domain.ScanResult
	err      error
	lastPath string
	lastOpts domain.ScanOptions
}

func (m *mockScanService) Scan(
	_ context.Context,
	path string,
	opts domain.ScanOptions,
) (domain.ScanResult, error) {
	m.lastPath = path
	m.lastOpts = opts
	return m.result, m.err
}

// mockHistoryStore is a mock implementation of driven.HistoryStore.
type mockHistoryStore struct {
	reports []domain.ScanReport
	cleared bool
	err     error
}

func (m *mockHistoryStore) Save(_ context.Context, _ domain.ScanReport) error {
	return m.err
}

func (m *mockHistoryStore) Get(_ context.Context, _ string) (domain.ScanReport, error) {
	return domain.ScanReport{}, m.err
}

func (m *mockHistoryStore) List(_ context.Context, _ int) ([]domain.ScanReport, error) {
	return m.reports, m.err
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	m.cleared = true
	return m.err
}

func (m *mockHistoryStore) Close() error {
	return nil
}

// setupTestServices swaps the package services for test doubles and
// returns a cleanup that restores the originals.
func setupTestServices(scan *mockScanService, history *mockHistoryStore) func() {
	origAnalyser := analyserService
	origScan := scanService
	origWatch := watchService
	origHistory := historyStore
	origConfig := configStore

	svcs := Services{
		Analyser: services.NewAnalyser(),
		Scan:     scan,
	}
	if history != nil {
		svcs.History = history
	}
	SetServices(svcs)

	return func() {
		analyserService = origAnalyser
		scanService = origScan
		watchService = origWatch
		historyStore = origHistory
		configStore = origConfig
	}
}

func resultWithEdges() domain.ScanResult {
	seq := domain.EntropySequence{
		{Index: 0, Entropy: 1.0},
		{Index: 1, Entropy: 7.9},
		{Index: 2, Entropy: 7.8},
		{Index: 3, Entropy: 0.5},
	}
	edges := []domain.Edge{
		{BlockIndex: 1, Type: domain.EdgeRising},
		{BlockIndex: 3, Type: domain.EdgeFalling},
	}
	return domain.ScanResult{
		Report: domain.ScanReport{
			ID:           "report-1",
			Path:         "/tmp/sample.bin",
			Size:         4096,
			BlockSize:    1024,
			Blocks:       4,
			MeanEntropy:  4.3,
			MinEntropy:   0.5,
			MaxEntropy:   7.9,
			FileEntropy:  4.5,
			TotalEntropy: 18432,
			Edges:        edges,
		},
		Sequence: seq,
		Edges:    edges,
	}
}
