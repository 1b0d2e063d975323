package commands

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"iniharness/internal/bench"
	"iniharness/internal/config"
	"iniharness/internal/ui"
)

// BenchCommand handles the bench command
type BenchCommand struct {
	config *config.Config
	runner *bench.Runner
}

// NewBenchCommand creates a new BenchCommand
func NewBenchCommand(cfg *config.Config, runner *bench.Runner) *BenchCommand {
	return &BenchCommand{
		config: cfg,
		runner: runner,
	}
}

// Execute runs the command
func (bc *BenchCommand) Execute(cmd *cobra.Command, args []string) error {
	count := len(bench.ParseScenarios(bc.config)) + len(bench.WriteScenarios(bc.config))
	visible := term.IsTerminal(int(os.Stderr.Fd()))
	bc.runner.SetProgress(ui.NewProgressBar(count, os.Stderr, visible))

	return bc.runner.Run(cmd.Context())
}
