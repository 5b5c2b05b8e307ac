package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/ports/driven"
	"github.com/ali-raheem/shannon/internal/core/ports/driving"
	"github.com/ali-raheem/shannon/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService orchestrates an end-to-end scan: read the input, compute
// the entropy sequence, detect edges and record the report.
type ScanService struct {
	input    driven.InputSource
	analyser driving.AnalyserService
	history  driven.HistoryStore
}

// NewScanService creates a new scan service.
// The history parameter is optional (can be nil); without it reports
// are not recorded.
func NewScanService(
	input driven.InputSource,
	analyser driving.AnalyserService,
	history driven.HistoryStore,
) *ScanService {
	return &ScanService{
		input:    input,
		analyser: analyser,
		history:  history,
	}
}

// Scan analyses the named input with the given options.
func (s *ScanService) Scan(ctx context.Context, path string, opts domain.ScanOptions) (domain.ScanResult, error) {
	logger.Section("Scan")
	logger.Debug("Input: %q, block size: %d", path, opts.BlockSize)

	data, err := s.input.ReadAll(ctx, path)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("Read %d bytes", len(data))

	seq, err := s.analyser.Scan(data, opts.BlockSize)
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("scanning: %w", err)
	}

	edges := s.analyser.DetectEdges(seq, opts.Thresholds)

	fileEntropy := s.analyser.Entropy(data)
	report := domain.ScanReport{
		ID:           uuid.NewString(),
		Path:         path,
		Size:         int64(len(data)),
		BlockSize:    opts.BlockSize,
		Blocks:       len(seq),
		MeanEntropy:  seq.Mean(),
		MinEntropy:   seq.Min(),
		MaxEntropy:   seq.Max(),
		FileEntropy:  fileEntropy,
		TotalEntropy: fileEntropy * float64(len(data)),
		Edges:        edges,
		CreatedAt:    time.Now().UTC(),
	}

	// History is best-effort: a persistence failure never fails the scan.
	if s.history != nil {
		if err := s.history.Save(ctx, report); err != nil {
			logger.Warn("Failed to record scan history: %v", err)
		}
	}

	return domain.ScanResult{
		Report:   report,
		Sequence: seq,
		Edges:    edges,
	}, nil
}
