package bench

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0 μs"},
		{0.0000004, "0 μs"},
		{0.0005, "500 μs"},
		{0.000999, "999 μs"},
		{0.001, "1.0 ms"},
		{0.0015, "1.5 ms"},
		{0.25, "250.0 ms"},
		{1.0, "1.00 s"},
		{12.5, "12.50 s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatTime(tt.seconds); got != tt.expected {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{0, "0/sec"},
		{500, "500/sec"},
		{999, "999/sec"},
		{1000, "1.0K/sec"},
		{1500, "1.5K/sec"},
		{999_000, "999.0K/sec"},
		{1_000_000, "1.00M/sec"},
		{2_500_000, "2.50M/sec"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatRate(tt.rate); got != tt.expected {
				t.Errorf("FormatRate(%v) = %q, want %q", tt.rate, got, tt.expected)
			}
		})
	}
}
