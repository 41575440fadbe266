package entity

import "testing"

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want float64
	}{
		{"exact mean", 4.0, 4.0},
		{"mean of 4 5 3", 4.0, 4.0},
		{"mean of 4 5", 4.5, 4.5},
		{"two thirds", 4.0 / 3.0 * 3.5, 4.7}, // 4.666... -> 4.7
		{"round down", 3.64, 3.6},
		{"round up", 3.66, 3.7},
		{"no reviews", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundRating(tt.mean); got != tt.want {
				t.Errorf("RoundRating(%v) = %v, want %v", tt.mean, got, tt.want)
			}
		})
	}
}
