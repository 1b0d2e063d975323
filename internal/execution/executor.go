package execution

import (
	"context"

	"iniharness/internal/domain"
)

// Executor executes a single test case and returns its outcome.
// Implementations must never return without an outcome.
type Executor interface {
	Execute(ctx context.Context, tc domain.TestCase, ordinal, total int) domain.TestOutcome
}
