package entity

import "testing"

func TestFeeSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		wantFee      float64
		wantEarnings float64
	}{
		{"round amount", 100, 10, 90},
		{"small amount", 10, 1, 9},
		{"fractional cents round to two decimals", 33.33, 3.33, 30.00},
		{"repeating decimal", 0.99, 0.10, 0.89},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, earnings := FeeSplit(tt.amount)
			if fee != tt.wantFee {
				t.Errorf("FeeSplit(%v) fee = %v, want %v", tt.amount, fee, tt.wantFee)
			}
			if earnings != tt.wantEarnings {
				t.Errorf("FeeSplit(%v) earnings = %v, want %v", tt.amount, earnings, tt.wantEarnings)
			}
		})
	}
}

// The split is computed once and stored; fee plus earnings must always
// reconstruct the gross amount to the cent.
func TestFeeSplitAddsUp(t *testing.T) {
	amounts := []float64{100, 45.50, 33.33, 0.99, 12345.67}
	for _, amount := range amounts {
		fee, earnings := FeeSplit(amount)
		sum := round2(fee + earnings)
		if sum != round2(amount) {
			t.Errorf("FeeSplit(%v): fee %v + earnings %v = %v", amount, fee, earnings, sum)
		}
	}
}
