package mathutil

import (
	"math"
	"testing"
)

func TestRoundToCents(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "No rounding needed",
			input:    123.45,
			expected: 123.45,
		},
		{
			name:     "Round down",
			input:    123.454,
			expected: 123.45,
		},
		{
			name:     "Round up",
			input:    123.456,
			expected: 123.46,
		},
		{
			name:     "Half rounds away from zero",
			input:    0.025,
			expected: 0.03,
		},
		{
			name:     "Negative half rounds away from zero",
			input:    -0.025,
			expected: -0.03,
		},
		{
			name:     "Negative value",
			input:    -123.456,
			expected: -123.46,
		},
		{
			name:     "Zero",
			input:    0.0,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundToCents(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundToCents(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Errorf("IsZero(0.005) = false, expected true (within one cent)")
	}
	if IsZero(0.02) {
		t.Errorf("IsZero(0.02) = true, expected false")
	}
	if !IsZero(-0.004) {
		t.Errorf("IsZero(-0.004) = false, expected true")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.00, 100.009, 0.01) {
		t.Errorf("WithinTolerance(100.00, 100.009, 0.01) = false, expected true")
	}
	if WithinTolerance(100.00, 100.02, 0.01) {
		t.Errorf("WithinTolerance(100.00, 100.02, 0.01) = true, expected false")
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{
			name:     "Simple percentage",
			value:    30000,
			total:    300000,
			expected: 10.0,
		},
		{
			name:     "Zero total",
			value:    100,
			total:    0,
			expected: 0.0,
		},
		{
			name:     "Full value",
			value:    250,
			total:    250,
			expected: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	result := ApplyPercentage(300000, 20)
	if math.Abs(result-60000) > 1e-9 {
		t.Errorf("ApplyPercentage(300000, 20) = %v, expected 60000", result)
	}
}
