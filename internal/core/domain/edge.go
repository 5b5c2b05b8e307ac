package domain

const unknownDescription = "Unknown"

// EdgeType classifies a detected entropy transition.
type EdgeType string

// Available edge types.
const (
	// EdgeRising marks a transition from a low-entropy region into a
	// high-entropy region (entropy crossed the high threshold).
	EdgeRising EdgeType = "rising"

	// EdgeFalling marks a transition from a high-entropy region back
	// into a low-entropy region (entropy crossed the low threshold).
	EdgeFalling EdgeType = "falling"
)

// IsValid returns true if the edge type is recognised.
func (t EdgeType) IsValid() bool {
	switch t {
	case EdgeRising, EdgeFalling:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t EdgeType) String() string {
	return string(t)
}

// Description returns a human-readable description of the edge type.
func (t EdgeType) Description() string {
	switch t {
	case EdgeRising:
		return "Rising (entropy climbs above the high threshold)"
	case EdgeFalling:
		return "Falling (entropy drops below the low threshold)"
	default:
		return unknownDescription
	}
}

// Edge records a detected transition in an entropy sequence. It
// references a position within the sequence; it does not duplicate
// entropy values.
type Edge struct {
	// BlockIndex is the index of the block at which the transition
	// fired.
	BlockIndex int `json:"block_index"`

	// Type is the transition direction.
	Type EdgeType `json:"type"`
}

// Thresholds is the hysteresis threshold pair, in the same unit as the
// entropy values it is compared against. The detector itself is
// unit-agnostic; callers are responsible for supplying sensible values
// (typically High >= Low, both within [0, 8]).
type Thresholds struct {
	// High arms the detector: a value at or above it in the Low state
	// emits a rising edge.
	High float64

	// Low disarms the detector: a value at or below it in the High
	// state emits a falling edge.
	Low float64
}

// FractionalThresholds converts thresholds expressed as fractions of
// the 8 bits/byte maximum into absolute bits/byte. Values above 1.0
// are taken to be absolute already and pass through unchanged, so
// callers can supply either convention.
func FractionalThresholds(high, low float64) Thresholds {
	t := Thresholds{High: high, Low: low}
	if high <= 1.0 {
		t.High = high * MaxEntropy
	}
	if low <= 1.0 {
		t.Low = low * MaxEntropy
	}
	return t
}
