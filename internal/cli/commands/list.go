package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"iniharness/internal/config"
	"iniharness/internal/discovery"
	"iniharness/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.scanner.Scan(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	return lc.formatter.PrintTestList(tests)
}
