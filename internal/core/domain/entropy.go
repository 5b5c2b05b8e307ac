package domain

// MaxEntropy is the theoretical upper bound for byte entropy, in bits
// per byte. A buffer with all 256 byte values equally represented
// reaches it.
const MaxEntropy = 8.0

// BlockEntropy is the entropy measurement for a single block.
type BlockEntropy struct {
	// Index is the zero-based block index within the input.
	Index int

	// Entropy is the Shannon entropy of the block in bits per byte,
	// in the closed interval [0, 8].
	Entropy float64
}

// EntropySequence is an ordered sequence of per-block entropy
// measurements, one per block, in increasing index order. It is the
// sole interchange artifact between the scanner and its consumers
// (edge detection, chart rendering) and is immutable once produced.
type EntropySequence []BlockEntropy

// Max returns the largest entropy value in the sequence, or 0.0 for
// an empty sequence.
func (s EntropySequence) Max() float64 {
	var max float64
	for _, b := range s {
		if b.Entropy > max {
			max = b.Entropy
		}
	}
	return max
}

// Min returns the smallest entropy value in the sequence, or 0.0 for
// an empty sequence.
func (s EntropySequence) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0].Entropy
	for _, b := range s[1:] {
		if b.Entropy < min {
			min = b.Entropy
		}
	}
	return min
}

// Mean returns the arithmetic mean of the entropy values, or 0.0 for
// an empty sequence. Note this is a mean of per-block values, not the
// entropy of the whole input.
func (s EntropySequence) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, b := range s {
		sum += b.Entropy
	}
	return sum / float64(len(s))
}
