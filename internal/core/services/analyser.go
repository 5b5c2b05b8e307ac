package services

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/core/ports/driving"
	"github.com/ali-raheem/shannon/internal/logger"
)

// Ensure Analyser implements the interface.
var _ driving.AnalyserService = (*Analyser)(nil)

// parallelThreshold is the block count above which Scan fans out
// across CPUs. Below it the goroutine overhead outweighs the work.
const parallelThreshold = 256

// Analyser is the stateless numeric engine. Every method is a pure
// function of its inputs, so a single instance is safe to share.
type Analyser struct{}

// NewAnalyser creates a new analyser.
func NewAnalyser() *Analyser {
	return &Analyser{}
}

// Entropy returns the Shannon entropy of data in bits per byte.
// Empty input has entropy 0. The result is always within [0, 8].
func (a *Analyser) Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}

	total := float64(len(data))
	var entropy float64
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// TotalEntropy returns Entropy(data) multiplied by the input length.
// It is a weighted magnitude metric in bits, not bits per byte.
func (a *Analyser) TotalEntropy(data []byte) float64 {
	return a.Entropy(data) * float64(len(data))
}

// Scan partitions data into contiguous blocks of blockSize bytes and
// computes the entropy of each. The final block may be shorter; it is
// never empty. Empty input yields an empty sequence. Blocks are
// independent, so large inputs are processed as a parallel map over
// blocks with the sequence order preserved by construction.
func (a *Analyser) Scan(data []byte, blockSize int) (domain.EntropySequence, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d: %w",
			blockSize, domain.ErrInvalidConfiguration)
	}

	if len(data) == 0 {
		return domain.EntropySequence{}, nil
	}

	blocks := (len(data) + blockSize - 1) / blockSize
	seq := make(domain.EntropySequence, blocks)
	logger.Debug("Scanning %d bytes as %d blocks of %d", len(data), blocks, blockSize)

	fill := func(i int) {
		start := i * blockSize
		end := start + blockSize
		if end > len(data) {
			end = len(data)
		}
		seq[i] = domain.BlockEntropy{
			Index:   i,
			Entropy: a.Entropy(data[start:end]),
		}
	}

	if blocks < parallelThreshold {
		for i := 0; i < blocks; i++ {
			fill(i)
		}
		return seq, nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < blocks; i++ {
		g.Go(func() error {
			fill(i)
			return nil
		})
	}
	// Workers never fail; Wait is only a join point.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return seq, nil
}
