package util

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "negative", value: -0.4, expected: 0},
		{name: "inside", value: 0.42, expected: 0.42},
		{name: "above one", value: 1.7, expected: 1},
		{name: "nan", value: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp01(tt.value); got != tt.expected {
				t.Fatalf("Clamp01(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "rounds down", value: 2.04, expected: 2.0},
		{name: "rounds up", value: 29.96, expected: 30.0},
		{name: "half away from zero", value: 0.25, expected: 0.3},
		{name: "already rounded", value: 12.3, expected: 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Round1(tt.value); got != tt.expected {
				t.Fatalf("Round1(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
