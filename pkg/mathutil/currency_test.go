package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"ROI percentage", 698.4251968, 698.43},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFloorCount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"Conservative scenario", 15000 * 0.02, 300},
		{"Moderate scenario", 15000 * 0.04, 600},
		{"Optimistic scenario", 15000 * 0.06, 900},
		{"Fraction below one", 0.15, 0},
		{"Fraction truncated", 12.99, 12},
		{"Zero", 0, 0},
		{"Negative", -4, 0},
		{"NaN", math.NaN(), 0},
		{"Beyond int range", math.MaxInt64 * 2.0, math.MaxInt},
		{"Positive infinity", math.Inf(1), math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorCount(tt.input); got != tt.expected {
				t.Errorf("FloorCount(%v) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Exactly tolerance", 0.01, true},
		{"Large positive", 100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsZero(tt.input)
			if result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("expected 1.5 to be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("expected NaN to be non-finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("expected infinities to be non-finite")
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"50% of 100", 50.0, 100.0, 50.0},
		{"Thematic share", 509.0, 1369.0, 37.180},
		{"Zero value", 0.0, 100.0, 0.0},
		{"Zero total", 50.0, 0.0, 0.0},
		{"Both zero", 0.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
					tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		current  float64
		expected float64
		defined  bool
	}{
		{"Participant growth", 207, 1369, 561.353, true},
		{"Workshop growth", 12, 28, 133.333, true},
		{"Decline", 100, 50, -50, true},
		{"No change", 10, 10, 0, true},
		{"Zero base", 0, 10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PercentChange(tt.previous, tt.current)
			if ok != tt.defined {
				t.Fatalf("PercentChange(%v, %v) defined = %v, expected %v", tt.previous, tt.current, ok, tt.defined)
			}
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("PercentChange(%v, %v) = %v, expected %v", tt.previous, tt.current, got, tt.expected)
			}
		})
	}
}
