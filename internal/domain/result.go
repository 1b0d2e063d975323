package domain

import "time"

// OutcomeKind classifies how a test file execution ended
type OutcomeKind int

const (
	// OutcomePassed means the process exited with code 0
	OutcomePassed OutcomeKind = iota
	// OutcomeFailed means the process exited non-zero or was killed by a signal
	OutcomeFailed
	// OutcomeTimeout means the process exceeded the per-test deadline
	OutcomeTimeout
	// OutcomeSpawnError means the process could not be started
	OutcomeSpawnError
	// OutcomeCanceled means the run was interrupted while the process ran
	OutcomeCanceled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeSpawnError:
		return "error"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// TestOutcome represents the result of executing a test file
type TestOutcome struct {
	Case      TestCase
	Succeeded bool          // Whether the test passed (exit code 0)
	Stdout    string        // Captured standard output
	Stderr    string        // Captured standard error
	ExitCode  int           // Process exit code, -1 if it never exited normally
	Kind      OutcomeKind   // How the execution ended
	Err       error         // Spawn or wait error, nil on success
	Duration  time.Duration // Time taken to execute
}

// SuiteSummary aggregates the outcomes of a test run
type SuiteSummary struct {
	Total       int
	FailedNames []string // File names of failed cases, in discovery order
	Outcomes    []TestOutcome
}

// Record adds one outcome to the summary
func (s *SuiteSummary) Record(outcome TestOutcome) {
	s.Total++
	s.Outcomes = append(s.Outcomes, outcome)
	if !outcome.Succeeded {
		s.FailedNames = append(s.FailedNames, outcome.Case.FileName)
	}
}

// Passed reports whether the run had at least one case and no failures
func (s SuiteSummary) Passed() bool {
	return s.Total > 0 && len(s.FailedNames) == 0
}

// ExitCode is the process-level verdict: 0 when Passed, 1 otherwise
func (s SuiteSummary) ExitCode() int {
	if s.Passed() {
		return 0
	}
	return 1
}
