package commands

import (
	"fmt"
	"log/slog"
	"os"

	"iniharness/internal/bench"
	"iniharness/internal/config"
	"iniharness/internal/discovery"
	"iniharness/internal/execution"
	"iniharness/internal/ui"

	"github.com/spf13/cobra"
)

// ExitError carries a non-zero exit status without an error message
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Commands holds all CLI commands. They are built by Load once the
// project configuration is known.
type Commands struct {
	logger *slog.Logger
	level  *slog.LevelVar

	Test   *TestCommand
	List   *ListCommand
	Browse *BrowseCommand
	Bench  *BenchCommand
}

// NewCommands creates the command set. level is raised or lowered to the
// configured log level on Load.
func NewCommands(logger *slog.Logger, level *slog.LevelVar) *Commands {
	return &Commands{
		logger: logger,
		level:  level,
	}
}

// Load resolves the project root, reads iniharness.yaml from it and builds
// every command. It runs before each harness subcommand, so help, version
// and completion work without a project.
func (c *Commands) Load(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadProject()
	if err != nil {
		return err
	}
	c.level.Set(cfg.SlogLevel())
	c.logger.Debug("project loaded", slog.String("root", cfg.ProjectPath))

	c.build(cfg)
	return nil
}

// build creates all commands with dependencies
func (c *Commands) build(cfg *config.Config) {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.TestPrefix, cfg.TestExtension)
	testParser := discovery.NewParser()
	formatter := ui.NewFormatter(os.Stdout, testParser)
	runner := execution.NewRunner(cfg, os.Stdout, os.Stderr, c.logger)
	suite := execution.NewSuite(cfg, scanner, runner, formatter, c.logger)
	benchRunner := bench.NewRunner(cfg, os.Stdout, c.logger)
	viewer := ui.NewOutcomeViewer()

	c.Test = NewTestCommand(suite)
	c.List = NewListCommand(cfg, scanner, formatter)
	c.Browse = NewBrowseCommand(suite, viewer)
	c.Bench = NewBenchCommand(cfg, benchRunner)
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "test",
		Short:   "Run the test suite",
		Long:    "Discover tests/test_*.mojo and run each file in its own interpreter process",
		Args:    cobra.NoArgs,
		PreRunE: c.Load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Test.Execute(cmd, args)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:     "list",
		Short:   "List discovered test files",
		Long:    "Scan the tests directory and list test files with their test functions without executing them",
		Args:    cobra.NoArgs,
		PreRunE: c.Load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List.Execute(cmd, args)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:     "browse",
		Short:   "Run the test suite and browse the results",
		Long:    "Run the test suite, then display every outcome and its captured output in an interactive viewer",
		Args:    cobra.NoArgs,
		PreRunE: c.Load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Browse.Execute(cmd, args)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:     "bench",
		Short:   "Run baseline parse and write benchmarks",
		Long:    "Measure parsing and serialization throughput of the reference INI implementation",
		Args:    cobra.NoArgs,
		PreRunE: c.Load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Bench.Execute(cmd, args)
		},
	})
}
