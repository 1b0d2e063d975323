package domain

import "time"

// ScenarioKind selects the workload a scenario measures
type ScenarioKind int

const (
	// ScenarioParse parses a fixture into a fresh document each iteration
	ScenarioParse ScenarioKind = iota
	// ScenarioWrite serializes a pre-parsed document each iteration
	ScenarioWrite
)

// Op is the per-operation noun used in report lines
func (k ScenarioKind) Op() string {
	if k == ScenarioWrite {
		return "write"
	}
	return "parse"
}

// FixtureDocument is a named literal INI text used as workload input
type FixtureDocument struct {
	Name string
	Text string
}

// Scenario is a named fixture, iteration count and operation kind
type Scenario struct {
	ID         string // Stable key, e.g. "parse/simple"
	Title      string // Heading printed above the result line
	Fixture    FixtureDocument
	Iterations int
	Kind       ScenarioKind
}

// minElapsed stands in for a zero measurement so rates stay finite
const minElapsed = time.Nanosecond

// BenchmarkSample is one measured workload execution
type BenchmarkSample struct {
	Elapsed    time.Duration
	Iterations int
}

// ElapsedSeconds returns the total measured time in seconds
func (s BenchmarkSample) ElapsedSeconds() float64 {
	return s.Elapsed.Seconds()
}

// AverageSeconds returns the mean time per iteration
func (s BenchmarkSample) AverageSeconds() float64 {
	if s.Iterations <= 0 {
		return 0
	}
	return s.ElapsedSeconds() / float64(s.Iterations)
}

// Rate returns iterations per second. A zero elapsed time counts as one
// clock tick.
func (s BenchmarkSample) Rate() float64 {
	elapsed := s.Elapsed
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	return float64(s.Iterations) / elapsed.Seconds()
}
