package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	testCases := []struct {
		input    float64
		expected float64
	}{
		{3.5, 1},
		{-0.1, -1},
		{0, 0},
		{math.Inf(-1), -1},
	}
	for _, tc := range testCases {
		if got := Sign(tc.input); got != tc.expected {
			t.Errorf("Sign(%v) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		name      string
		x, lo, hi float64
		expected  float64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 15, 0, 10, 10},
		{"on bound", 10, 0, 10, 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clamp(tc.x, tc.lo, tc.hi))
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, ClampMagnitude(12, 5))
	assert.Equal(t, -5.0, ClampMagnitude(-12, 5))
	assert.Equal(t, 3.0, ClampMagnitude(3, 5))
	assert.Equal(t, -12.0, ClampMagnitude(-12, 0), "non-positive limit disables the clamp")
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-12)
	assert.InDelta(t, 0.8, y, 1e-12)

	x, y = Normalize(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestDot(t *testing.T) {
	assert.Equal(t, 8.0, Dot(1, 2, 2, 3))
	assert.Equal(t, 0.0, Dot(-1, -2, 2, -1))
}
