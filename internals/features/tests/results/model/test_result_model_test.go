package model

import "testing"

func TestClampScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"mid range", 72.4, 72},
		{"rounds up", 72.5, 73},
		{"exact hundred", 100, 100},
		{"above hundred", 150, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampScore(tc.score); got != tc.want {
				t.Fatalf("ClampScore(%v) = %d, want %d", tc.score, got, tc.want)
			}
		})
	}
}
