package execution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"iniharness/internal/config"
	"iniharness/internal/discovery"
	"iniharness/internal/domain"
	"iniharness/internal/ui"
)

// ErrNoTests is returned when discovery finds no test files
var ErrNoTests = errors.New("no test files found")

// Suite discovers test files and runs them one after another
type Suite struct {
	config    *config.Config
	scanner   *discovery.Scanner
	executor  Executor
	formatter *ui.Formatter
	logger    *slog.Logger
}

// NewSuite creates a new Suite
func NewSuite(
	cfg *config.Config,
	scanner *discovery.Scanner,
	executor Executor,
	formatter *ui.Formatter,
	logger *slog.Logger,
) *Suite {
	return &Suite{
		config:    cfg,
		scanner:   scanner,
		executor:  executor,
		formatter: formatter,
		logger:    logger,
	}
}

// Run executes every discovered test file, even after failures, and
// prints the summary. The returned summary decides the exit code.
// An interrupted run returns an error wrapping context.Canceled and
// prints no summary.
func (s *Suite) Run(ctx context.Context) (domain.SuiteSummary, error) {
	var summary domain.SuiteSummary

	s.formatter.PrintSuiteHeader(s.config.ProjectName)

	testPath := s.config.GetTestPath()
	cases, err := s.scanner.Scan(testPath)
	if err != nil {
		return summary, err
	}

	if len(cases) == 0 {
		s.formatter.PrintNoTests()
		return summary, ErrNoTests
	}

	s.logger.Debug("discovered tests", slog.String("dir", testPath), slog.Int("count", len(cases)))
	s.formatter.PrintFound(len(cases))

	for i, tc := range cases {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("test run interrupted before %s: %w", tc.FileName, err)
		}

		outcome := s.executor.Execute(ctx, tc, i+1, len(cases))
		if outcome.Kind == domain.OutcomeCanceled {
			return summary, fmt.Errorf("test run interrupted during %s: %w", tc.FileName, context.Canceled)
		}
		summary.Record(outcome)
	}

	s.formatter.PrintSummary(summary)

	return summary, nil
}
