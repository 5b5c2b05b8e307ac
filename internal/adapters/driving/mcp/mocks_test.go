package mcp

import (
	"context"
	"time"

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
	report  domain.ScanReport
	err     error
}

func (m *mockHistoryStore) Save(_ context.Context, _ domain.ScanReport) error {
	return m.err
}

func (m *mockHistoryStore) Get(_ context.Context, _ string) (domain.ScanReport, error) {
	return m.report, m.err
}

func (m *mockHistoryStore) List(_ context.Context, _ int) ([]domain.ScanReport, error) {
	return m.reports, m.err
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	return m.err
}

func (m *mockHistoryStore) Close() error {
	return nil
}

func sampleReport() domain.ScanReport {
	return domain.ScanReport{
		ID:          "report-1",
		Path:        "/tmp/sample.bin",
		Size:        4096,
		BlockSize:   1024,
		Blocks:      4,
		MeanEntropy: 5.2,
		MinEntropy:  1.1,
		MaxEntropy:  7.9,
		FileEntropy: 5.4,
		Edges: []domain.Edge{
			{BlockIndex: 2, Type: domain.EdgeRising},
		},
		CreatedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func testPorts() *Ports {
	return &Ports{
		Scan:     &mockScanService{},
		Analyser: services.NewAnalyser(),
	}
}
