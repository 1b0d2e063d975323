package bench

import (
	"errors"
	"fmt"
	"time"

	"iniharness/internal/domain"
)

// ErrInvalidIterations is returned for a non-positive iteration count
var ErrInvalidIterations = errors.New("iterations must be positive")

// WorkloadError reports a failed workload iteration. It aborts the whole
// benchmark run since partial numbers would not be comparable.
type WorkloadError struct {
	Scenario  string
	Iteration int
	Err       error
}

func (e *WorkloadError) Error() string {
	if e.Scenario == "" {
		return fmt.Sprintf("workload failed at iteration %d: %v", e.Iteration, e.Err)
	}
	return fmt.Sprintf("workload %s failed at iteration %d: %v", e.Scenario, e.Iteration, e.Err)
}

func (e *WorkloadError) Unwrap() error {
	return e.Err
}

// Sample runs op iterations times back to back and measures the total
// wall-clock time of the loop. There is no warm-up and no outlier rejection.
func Sample(iterations int, op func() error) (domain.BenchmarkSample, error) {
	if iterations <= 0 {
		return domain.BenchmarkSample{}, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := op(); err != nil {
			return domain.BenchmarkSample{}, &WorkloadError{Iteration: i + 1, Err: err}
		}
	}
	elapsed := time.Since(start)

	return domain.BenchmarkSample{Elapsed: elapsed, Iterations: iterations}, nil
}
