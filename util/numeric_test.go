package util

import (
	"testing"
)

func TestMin(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"smaller first", 3, 8, 3},
		{"smaller second", 9, 6, 6},
		{"equal", 2, 2, 2},
		{"negative", -4, -9, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Min(tt.x, tt.y); result != tt.expected {
				t.Errorf("Min(%v, %v) = %v; want %v", tt.x, tt.y, result, tt.expected)
			}
		})
	}

	if Min(1.5, 2.5) != 1.5 {
		t.Errorf("Min(1.5, 2.5) should pick the smaller float")
	}
	if Min(uint8(9), uint8(4)) != uint8(4) {
		t.Errorf("Min should work across Numeric types")
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"larger first", 5, 3, 5},
		{"larger second", 2, 7, 7},
		{"equal", 4, 4, 4},
		{"negative", -5, -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Max(tt.x, tt.y); result != tt.expected {
				t.Errorf("Max(%v, %v) = %v; want %v", tt.x, tt.y, result, tt.expected)
			}
		})
	}

	if Max(1.5, 2.5) != 2.5 {
		t.Errorf("Max(1.5, 2.5) should pick the larger float")
	}
	if Max(uint8(9), uint8(4)) != uint8(9) {
		t.Errorf("Max should work across Numeric types")
	}
}
