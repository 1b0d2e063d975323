package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"iniharness/internal/domain"
	"iniharness/internal/execution"
)

// TestCommand handles the test command
type TestCommand struct {
	suite *execution.Suite
}

// NewTestCommand creates a new TestCommand
func NewTestCommand(suite *execution.Suite) *TestCommand {
	return &TestCommand{suite: suite}
}

// Execute runs the command
func (tc *TestCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := tc.suite.Run(cmd.Context())
	return verdict(summary, err)
}

// verdict maps a finished run to the command's error
func verdict(summary domain.SuiteSummary, err error) error {
	if errors.Is(err, execution.ErrNoTests) {
		return &ExitError{Code: 1}
	}
	if err != nil {
		return err
	}
	if code := summary.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
