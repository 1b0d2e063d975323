package bench

import "fmt"

// FormatTime renders seconds in μs, ms or s, picking the largest unit
// that keeps the value at or above 1.
func FormatTime(seconds float64) string {
	switch {
	case seconds < 0.001:
		return fmt.Sprintf("%.0f μs", seconds*1_000_000)
	case seconds < 1.0:
		return fmt.Sprintf("%.1f ms", seconds*1_000)
	default:
		return fmt.Sprintf("%.2f s", seconds)
	}
}

// FormatRate renders an operations-per-second rate.
func FormatRate(rate float64) string {
	switch {
	case rate >= 1_000_000:
		return fmt.Sprintf("%.2fM/sec", rate/1_000_000)
	case rate >= 1_000:
		return fmt.Sprintf("%.1fK/sec", rate/1_000)
	default:
		return fmt.Sprintf("%.0f/sec", rate)
	}
}
