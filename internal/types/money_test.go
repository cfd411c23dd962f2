package types

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{76.8, 76.8},
		{10.125, 10.13},
		{-3.456, -3.46},
		{199.999, 200},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNonNegative(t *testing.T) {
	if got := NonNegative(-5); got != 0 {
		t.Errorf("NonNegative(-5) = %v, want 0", got)
	}
	if got := NonNegative(12.5); got != 12.5 {
		t.Errorf("NonNegative(12.5) = %v, want 12.5", got)
	}
}
