package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"iniharness/internal/execution"
	"iniharness/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	suite  *execution.Suite
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(suite *execution.Suite, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		suite:  suite,
		viewer: viewer,
	}
}

// Execute runs the suite, then opens the viewer when attached to a terminal
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := bc.suite.Run(cmd.Context())
	if err != nil {
		return verdict(summary, err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Yellow("Not a terminal, skipping the viewer")
		return verdict(summary, nil)
	}

	if err := bc.viewer.View(summary); err != nil {
		return err
	}

	return verdict(summary, nil)
}
