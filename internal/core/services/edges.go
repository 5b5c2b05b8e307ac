package services

import (
	"github.com/ali-raheem/shannon/internal/core/domain"
	"github.com/ali-raheem/shannon/internal/logger"
)

// DetectEdges runs a two-state hysteresis machine over the sequence in
// index order. In the Low state a value at or above t.High emits a
// rising edge and arms the machine; in the High state a value at or
// below t.Low emits a falling edge and disarms it. Values inside the
// gap change nothing, which keeps noise around a single cutoff from
// producing edge chatter.
//
// The comparison is unit-agnostic: thresholds are compared against
// whatever scale the sequence's entropy values use. Equal thresholds
// degenerate to a single-threshold detector, and t.High < t.Low is
// well-defined (the machine rarely or never transitions); neither is
// an error.
func (a *Analyser) DetectEdges(seq domain.EntropySequence, t domain.Thresholds) []domain.Edge {
	edges := []domain.Edge{}
	high := false
	for _, b := range seq {
		switch {
		case !high && b.Entropy >= t.High:
			high = true
			edges = append(edges, domain.Edge{BlockIndex: b.Index, Type: domain.EdgeRising})
		case high && b.Entropy <= t.Low:
			high = false
			edges = append(edges, domain.Edge{BlockIndex: b.Index, Type: domain.EdgeFalling})
		}
	}
	logger.Debug("Detected %d edges across %d blocks (high=%.3f low=%.3f)",
		len(edges), len(seq), t.High, t.Low)
	return edges
}
