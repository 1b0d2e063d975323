package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"

	"iniharness/internal/config"
	"iniharness/internal/domain"
)

// waitDelay bounds how long Wait keeps reading pipes held open by
// grandchildren after the test process has been killed.
const waitDelay = 2 * time.Second

// Runner executes a single test file in its own interpreter process
type Runner struct {
	config *config.Config
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewRunner creates a new Runner. Progress and captured stdout go to stdout,
// captured stderr goes to stderr.
func NewRunner(cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		config: cfg,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Execute runs the interpreter for a single test file
func (r *Runner) Execute(ctx context.Context, tc domain.TestCase, ordinal, total int) domain.TestOutcome {
	fmt.Fprintf(r.stdout, "[%d/%d] %s\n", ordinal, total, tc.DisplayName)

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.config.Interpreter, "-I", r.config.GetIncludePath(), tc.Path)
	cmd.Dir = r.config.ProjectPath
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("starting test",
		slog.String("file", tc.FileName),
		slog.String("interpreter", r.config.Interpreter),
	)

	start := time.Now()
	err := cmd.Run()

	outcome := domain.TestOutcome{
		Case:     tc,
		ExitCode: -1,
		Err:      err,
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		outcome.Succeeded = true
		outcome.Kind = domain.OutcomePassed
		outcome.ExitCode = 0
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		outcome.Kind = domain.OutcomeTimeout
		color.New(color.FgRed).Fprintf(r.stdout, "  ✗ TIMEOUT after %s\n", r.config.Timeout)
		r.logger.Debug("test timed out", slog.String("file", tc.FileName), slog.Duration("timeout", r.config.Timeout))
		return outcome
	case errors.Is(ctx.Err(), context.Canceled):
		outcome.Kind = domain.OutcomeCanceled
		color.New(color.FgYellow).Fprintln(r.stdout, "  ✗ INTERRUPTED")
		r.logger.Debug("test interrupted", slog.String("file", tc.FileName))
		return outcome
	case errors.As(err, &exitErr):
		outcome.Kind = domain.OutcomeFailed
		outcome.ExitCode = exitErr.ExitCode()
	default:
		outcome.Kind = domain.OutcomeSpawnError
		color.New(color.FgRed).Fprintf(r.stdout, "  ✗ ERROR: %v\n", err)
		r.logger.Debug("test could not start", slog.String("file", tc.FileName), slog.String("error", err.Error()))
		return outcome
	}

	outcome.Stdout = stdout.String()
	outcome.Stderr = stderr.String()
	echo(r.stdout, outcome.Stdout)
	echo(r.stderr, outcome.Stderr)

	r.logger.Debug("test finished",
		slog.String("file", tc.FileName),
		slog.Int("exit_code", outcome.ExitCode),
		slog.Duration("duration", outcome.Duration),
	)

	return outcome
}

// echo writes captured output followed by a newline, skipping empty output
func echo(w io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}
