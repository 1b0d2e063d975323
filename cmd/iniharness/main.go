package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"iniharness/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "iniharness",
		Short: "Test and benchmark harness for an INI parsing library",
		Long: `Runs the library's test suite one file per interpreter process and
measures baseline INI parse/write throughput for comparison.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Commands load the project configuration before they run
	cmds := commands.NewCommands(logger, level)
	cmds.Register(rootCmd)

	// Interrupts cancel the running test process or benchmark
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
