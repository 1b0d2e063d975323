package domain

import (
	"math"
	"testing"
	"time"
)

func TestSuiteSummary_ExitCode(t *testing.T) {
	pass := TestOutcome{Case: TestCase{FileName: "test_alpha.mojo"}, Succeeded: true}
	fail := TestOutcome{Case: TestCase{FileName: "test_beta.mojo"}, Succeeded: false, Kind: OutcomeFailed}

	tests := []struct {
		name     string
		outcomes []TestOutcome
		expected int
		failed   []string
	}{
		{name: "no cases is a failure", outcomes: nil, expected: 1},
		{name: "all passed", outcomes: []TestOutcome{pass, pass}, expected: 0},
		{name: "one failed", outcomes: []TestOutcome{pass, fail}, expected: 1, failed: []string{"test_beta.mojo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SuiteSummary
			for _, o := range tt.outcomes {
				s.Record(o)
			}
			if s.ExitCode() != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, s.ExitCode())
			}
			if s.Total != len(tt.outcomes) {
				t.Errorf("expected total %d, got %d", len(tt.outcomes), s.Total)
			}
			if len(s.FailedNames) != len(tt.failed) {
				t.Fatalf("expected failed %v, got %v", tt.failed, s.FailedNames)
			}
			for i := range tt.failed {
				if s.FailedNames[i] != tt.failed[i] {
					t.Errorf("failed[%d] = %s, want %s", i, s.FailedNames[i], tt.failed[i])
				}
			}
		})
	}
}

func TestBenchmarkSample(t *testing.T) {
	s := BenchmarkSample{Elapsed: 2 * time.Second, Iterations: 5000}
	if got := s.AverageSeconds(); math.Abs(got-0.0004) > 1e-12 {
		t.Errorf("average = %g, want 0.0004", got)
	}
	if got := s.Rate(); math.Abs(got-2500) > 1e-9 {
		t.Errorf("rate = %g, want 2500", got)
	}
}

func TestBenchmarkSample_ZeroElapsed(t *testing.T) {
	s := BenchmarkSample{Elapsed: 0, Iterations: 10}
	rate := s.Rate()
	if math.IsInf(rate, 0) || math.IsNaN(rate) {
		t.Fatalf("rate must be finite, got %g", rate)
	}
	if s.AverageSeconds() != 0 {
		t.Errorf("average = %g, want 0", s.AverageSeconds())
	}
}

func TestScenarioKind_Op(t *testing.T) {
	if ScenarioParse.Op() != "parse" || ScenarioWrite.Op() != "write" {
		t.Errorf("unexpected ops %q %q", ScenarioParse.Op(), ScenarioWrite.Op())
	}
}
