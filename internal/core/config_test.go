package core

import "testing"

func TestTickMillis(t *testing.T) {
	tests := []struct {
		rate, ms, expected int
	}{
		{60, 500, 30},
		{60, 1500, 90},
		{30, 1000, 30},
		{60, 1, 1},    // rounds up to one tick
		{0, 1000, 60}, // unset rate falls back to 60
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickMillis(tc.ms); got != tc.expected {
			t.Errorf("TickMillis(%d) at %d tps = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
		}
	}
}
