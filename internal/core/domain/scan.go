package domain

import "time"

// DefaultBlockSize is the default number of bytes per block.
const DefaultBlockSize = 1024

// DefaultChartWidth is the default chart width in columns.
const DefaultChartWidth = 180

// DefaultChartHeight is the default chart height in rows.
const DefaultChartHeight = 100

// DefaultHighThreshold is the default high threshold, as a fraction of
// the 8 bits/byte maximum.
const DefaultHighThreshold = 0.95

// DefaultLowThreshold is the default low threshold, as a fraction of
// the 8 bits/byte maximum.
const DefaultLowThreshold = 0.85

// ScanOptions configures an end-to-end scan.
type ScanOptions struct {
	// BlockSize is the number of bytes per block. Must be positive.
	BlockSize int

	// Thresholds is the hysteresis pair for edge detection, in
	// absolute bits/byte.
	Thresholds Thresholds
}

// ScanResult is the complete outcome of one scan: the three artifacts
// the core exposes to its output collaborators.
type ScanResult struct {
	// Report is the persisted summary.
	Report ScanReport

	// Sequence is the per-block entropy sequence.
	Sequence EntropySequence

	// Edges are the detected transitions, in block order.
	Edges []Edge
}

// ScanReport is the stored summary of one scan.
type ScanReport struct {
	// ID uniquely identifies the report.
	ID string `json:"id"`

	// Path is the scanned input path ("-" for stdin).
	Path string `json:"path"`

	// Size is the input length in bytes.
	Size int64 `json:"size"`

	// BlockSize is the block size the scan used.
	BlockSize int `json:"block_size"`

	// Blocks is the number of blocks produced.
	Blocks int `json:"blocks"`

	// MeanEntropy is the mean of the per-block entropy values.
	MeanEntropy float64 `json:"mean_entropy"`

	// MinEntropy is the smallest per-block entropy value.
	MinEntropy float64 `json:"min_entropy"`

	// MaxEntropy is the largest per-block entropy value.
	MaxEntropy float64 `json:"max_entropy"`

	// FileEntropy is the entropy of the whole input in bits/byte.
	FileEntropy float64 `json:"file_entropy"`

	// TotalEntropy is FileEntropy multiplied by the input length, a
	// weighted magnitude metric in bits.
	TotalEntropy float64 `json:"total_entropy"`

	// Edges are the detected transitions.
	Edges []Edge `json:"edges"`

	// CreatedAt is when the scan ran.
	CreatedAt time.Time `json:"created_at"`
}
