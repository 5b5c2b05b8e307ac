package driving

import (
	"github.com/ali-raheem/shannon/internal/core/domain"
)

// AnalyserService is the numeric engine: block-wise entropy
// computation, hysteresis edge detection and chart rendering. All
// methods are pure functions of their inputs with no shared state.
type AnalyserService interface {
	// Entropy returns the Shannon entropy of data in bits per byte,
	// in [0, 8]. Empty input has entropy 0.
	Entropy(data []byte) float64

	// TotalEntropy returns Entropy(data) multiplied by len(data), a
	// weighted magnitude metric in bits.
	TotalEntropy(data []byte) float64

	// Scan partitions data into contiguous blocks of blockSize bytes
	// (the final block may be shorter) and computes the entropy of
	// each. Returns domain.ErrInvalidConfiguration for blockSize <= 0.
	Scan(data []byte, blockSize int) (domain.EntropySequence, error)

	// DetectEdges runs the two-state hysteresis machine over the
	// sequence and returns the transitions in block order. Total over
	// all inputs; threshold-unit agnostic.
	DetectEdges(seq domain.EntropySequence, t domain.Thresholds) []domain.Edge

	// Render maps the sequence onto a Width x Height character grid.
	// Returns domain.ErrInvalidConfiguration for non-positive
	// dimensions.
	Render(seq domain.EntropySequence, opts domain.ChartOptions) (domain.ChartGrid, error)
}
