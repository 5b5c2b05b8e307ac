package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali-raheem/shannon/internal/core/domain"
)

func sequenceOf(values ...float64) domain.EntropySequence {
	seq := make(domain.EntropySequence, len(values))
	for i, v := range values {
		seq[i] = domain.BlockEntropy{Index: i, Entropy: v}
	}
	return seq
}

// TestAnalyser_DetectEdges_RiseThenFall tests the basic transition pair
func TestAnalyser_DetectEdges_RiseThenFall(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(1.0, 3.0, 7.8, 7.9, 5.0, 2.0)
	th := domain.Thresholds{High: 7.6, Low: 6.8}

	edges := a.DetectEdges(seq, th)

	require.Len(t, edges, 2)
	assert.Equal(t, domain.Edge{BlockIndex: 2, Type: domain.EdgeRising}, edges[0])
	assert.Equal(t, domain.Edge{BlockIndex: 4, Type: domain.EdgeFalling}, edges[1])
}

// TestAnalyser_DetectEdges_HysteresisGap tests that values between the
// thresholds cause no transitions
func TestAnalyser_DetectEdges_HysteresisGap(t *testing.T) {
	a := NewAnalyser()
	// Oscillates inside the (6.8, 7.6) gap after arming: no chatter.
	seq := sequenceOf(1.0, 7.9, 7.0, 7.5, 6.9, 7.4, 6.0)
	th := domain.Thresholds{High: 7.6, Low: 6.8}

	edges := a.DetectEdges(seq, th)

	require.Len(t, edges, 2)
	assert.Equal(t, domain.EdgeRising, edges[0].Type)
	assert.Equal(t, 1, edges[0].BlockIndex)
	assert.Equal(t, domain.EdgeFalling, edges[1].Type)
	assert.Equal(t, 6, edges[1].BlockIndex)
}

// TestAnalyser_DetectEdges_StrictAlternation tests that edge types
// alternate for any input
func TestAnalyser_DetectEdges_StrictAlternation(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(8.0, 0.0, 8.0, 0.0, 8.0, 7.0, 8.0, 0.0)
	th := domain.Thresholds{High: 7.6, Low: 6.8}

	edges := a.DetectEdges(seq, th)

	require.NotEmpty(t, edges)
	for i := 1; i < len(edges); i++ {
		assert.NotEqual(t, edges[i-1].Type, edges[i].Type,
			"consecutive edges %d and %d have the same type", i-1, i)
	}
}

// TestAnalyser_DetectEdges_FirstBlockHigh tests arming on the very
// first block
func TestAnalyser_DetectEdges_FirstBlockHigh(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(7.9, 7.8, 7.7)
	th := domain.Thresholds{High: 7.6, Low: 6.8}

	edges := a.DetectEdges(seq, th)

	require.Len(t, edges, 1)
	assert.Equal(t, domain.Edge{BlockIndex: 0, Type: domain.EdgeRising}, edges[0])
}

// TestAnalyser_DetectEdges_EqualThresholds tests the degenerate
// single-threshold detector
func TestAnalyser_DetectEdges_EqualThresholds(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(3.0, 5.0, 3.0, 5.0)
	th := domain.Thresholds{High: 4.0, Low: 4.0}

	edges := a.DetectEdges(seq, th)

	require.Len(t, edges, 2)
	assert.Equal(t, domain.EdgeRising, edges[0].Type)
	assert.Equal(t, domain.EdgeFalling, edges[1].Type)
}

// TestAnalyser_DetectEdges_InvertedThresholds tests that high < low is
// well-defined rather than an error
func TestAnalyser_DetectEdges_InvertedThresholds(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(5.0, 5.0, 5.0)
	// Every value is >= High and <= Low: the machine arms at block 0
	// and disarms at block 1.
	th := domain.Thresholds{High: 4.0, Low: 6.0}

	edges := a.DetectEdges(seq, th)

	require.Len(t, edges, 2)
	assert.Equal(t, domain.EdgeRising, edges[0].Type)
	assert.Equal(t, domain.EdgeFalling, edges[1].Type)
}

// TestAnalyser_DetectEdges_Empty tests the empty sequence
func TestAnalyser_DetectEdges_Empty(t *testing.T) {
	a := NewAnalyser()

	edges := a.DetectEdges(domain.EntropySequence{}, domain.Thresholds{High: 7.6, Low: 6.8})

	assert.Empty(t, edges)
}

// TestAnalyser_DetectEdges_Deterministic tests idempotence on
// re-application
func TestAnalyser_DetectEdges_Deterministic(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(1.0, 7.9, 2.0, 7.8, 1.5)
	th := domain.Thresholds{High: 7.6, Low: 6.8}

	first := a.DetectEdges(seq, th)
	second := a.DetectEdges(seq, th)

	assert.Equal(t, first, second)
}

// TestAnalyser_DetectEdges_ThresholdScale tests both threshold
// conventions against the same bits/byte sequence
func TestAnalyser_DetectEdges_ThresholdScale(t *testing.T) {
	a := NewAnalyser()
	seq := sequenceOf(7.8, 7.9, 2.0)

	t.Run("raw fractions never fire on a bits scale", func(t *testing.T) {
		edges := a.DetectEdges(seq, domain.Thresholds{High: 0.95, Low: 0.85})

		// 7.8 >= 0.95 arms immediately; nothing ever drops to 0.85.
		require.Len(t, edges, 1)
		assert.Equal(t, domain.EdgeRising, edges[0].Type)
	})

	t.Run("converted fractions fire as intended", func(t *testing.T) {
		edges := a.DetectEdges(seq, domain.FractionalThresholds(0.95, 0.85))

		require.Len(t, edges, 2)
		assert.Equal(t, domain.Edge{BlockIndex: 0, Type: domain.EdgeRising}, edges[0])
		assert.Equal(t, domain.Edge{BlockIndex: 2, Type: domain.EdgeFalling}, edges[1])
	})
}
