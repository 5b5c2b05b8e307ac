// Package domain defines the core entities for shannon.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BlockEntropy / EntropySequence: per-block entropy measurements
//   - Edge: a detected transition between entropy regions
//   - Thresholds: the hysteresis threshold pair
//   - ChartGrid: a rendered terminal bar chart
//   - ScanReport: the persisted summary of one scan
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
