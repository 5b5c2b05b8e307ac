package mcp

import (
	"github.com/ali-raheem/shannon/internal/core/ports/driven"
	"github.com/ali-raheem/shannon/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan runs end-to-end entropy scans.
	Scan driving.ScanService

	// Analyser computes entropy for raw data.
	Analyser driving.AnalyserService

	// History exposes stored scan reports as resources. Optional; when
	// nil the report resources return empty results.
	History driven.HistoryStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	if p.Analyser == nil {
		return ErrMissingAnalyserService
	}
	return nil
}
