package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEdgeType_IsValid tests edge type validation
func TestEdgeType_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		edgeType EdgeType
		valid    bool
	}{
		{"rising", EdgeRising, true},
		{"falling", EdgeFalling, true},
		{"empty", EdgeType(""), false},
		{"unknown", EdgeType("sideways"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.edgeType.IsValid())
		})
	}
}

// TestEdgeType_Description tests edge type descriptions
func TestEdgeType_Description(t *testing.T) {
	assert.Contains(t, EdgeRising.Description(), "Rising")
	assert.Contains(t, EdgeFalling.Description(), "Falling")
	assert.Equal(t, unknownDescription, EdgeType("x").Description())
}

// TestFractionalThresholds_Fractions tests conversion of fractional thresholds
func TestFractionalThresholds_Fractions(t *testing.T) {
	th := FractionalThresholds(0.95, 0.85)

	assert.InDelta(t, 7.6, th.High, 1e-9)
	assert.InDelta(t, 6.8, th.Low, 1e-9)
}

// TestFractionalThresholds_Absolute tests pass-through of absolute thresholds
func TestFractionalThresholds_Absolute(t *testing.T) {
	th := FractionalThresholds(7.2, 6.5)

	assert.InDelta(t, 7.2, th.High, 1e-9)
	assert.InDelta(t, 6.5, th.Low, 1e-9)
}

// TestFractionalThresholds_Mixed tests one fractional and one absolute value
func TestFractionalThresholds_Mixed(t *testing.T) {
	th := FractionalThresholds(7.2, 0.5)

	assert.InDelta(t, 7.2, th.High, 1e-9)
	assert.InDelta(t, 4.0, th.Low, 1e-9)
}

// TestFractionalThresholds_Boundary tests that exactly 1.0 is treated as a fraction
func TestFractionalThresholds_Boundary(t *testing.T) {
	th := FractionalThresholds(1.0, 0.0)

	assert.InDelta(t, 8.0, th.High, 1e-9)
	assert.InDelta(t, 0.0, th.Low, 1e-9)
}
