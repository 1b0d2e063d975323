package execution

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"iniharness/internal/config"
	"iniharness/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeInterpreter writes a shell script that accepts "-I <dir> <file>" and
// runs <file> as a shell script, standing in for the real interpreter.
func fakeInterpreter(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fake-mojo")
	script := "#!/bin/sh\n[ \"$1\" = \"-I\" ] || exit 64\nexec /bin/sh \"$3\"\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write interpreter: %v", err)
	}
	return path
}

func writeTest(t *testing.T, dir, name, body string) domain.TestCase {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write test file %s: %v", name, err)
	}
	return domain.TestCase{Path: path, FileName: name, DisplayName: name}
}

func newTestConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	root := t.TempDir()
	cfg := config.New()
	cfg.ProjectPath = root
	cfg.Interpreter = fakeInterpreter(t, root)
	return cfg, root
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_Execute(t *testing.T) {
	cfg, root := newTestConfig(t)

	t.Run("exit zero succeeds and echoes output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		runner := NewRunner(cfg, &stdout, &stderr, discardLogger())
		tc := writeTest(t, root, "test_alpha.mojo", "echo 'all good'\necho 'warn' >&2\nexit 0\n")
		tc.DisplayName = "Alpha"

		outcome := runner.Execute(context.Background(), tc, 1, 2)

		if !outcome.Succeeded || outcome.Kind != domain.OutcomePassed || outcome.ExitCode != 0 {
			t.Errorf("expected success, got %+v", outcome)
		}
		if outcome.Stdout != "all good\n" {
			t.Errorf("stdout = %q", outcome.Stdout)
		}
		if outcome.Stderr != "warn\n" {
			t.Errorf("stderr = %q", outcome.Stderr)
		}
		if !strings.HasPrefix(stdout.String(), "[1/2] Alpha\n") {
			t.Errorf("missing progress line:\n%s", stdout.String())
		}
		if !strings.Contains(stdout.String(), "all good") {
			t.Errorf("stdout was not echoed:\n%s", stdout.String())
		}
		if stderr.String() != "warn\n" {
			t.Errorf("stderr echo = %q", stderr.String())
		}
	})

	t.Run("non-zero exit fails", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		runner := NewRunner(cfg, &stdout, &stderr, discardLogger())
		tc := writeTest(t, root, "test_beta.mojo", "echo 'assertion failed' >&2\nexit 3\n")

		outcome := runner.Execute(context.Background(), tc, 2, 2)

		if outcome.Succeeded {
			t.Fatal("expected failure")
		}
		if outcome.Kind != domain.OutcomeFailed || outcome.ExitCode != 3 {
			t.Errorf("expected failed with exit 3, got kind=%s exit=%d", outcome.Kind, outcome.ExitCode)
		}
		if !strings.Contains(stderr.String(), "assertion failed") {
			t.Errorf("stderr was not echoed: %q", stderr.String())
		}
	})

	t.Run("interpreter receives include dir", func(t *testing.T) {
		var stdout bytes.Buffer
		c := *cfg
		c.IncludeDir = "wrong"
		script := filepath.Join(root, "check-include")
		body := "#!/bin/sh\n[ \"$2\" = \"wrong\" ] && exit 0\nexit 1\n"
		if err := os.WriteFile(script, []byte(body), 0755); err != nil {
			t.Fatalf("failed to write interpreter: %v", err)
		}
		c.Interpreter = script
		runner := NewRunner(&c, &stdout, io.Discard, discardLogger())
		tc := writeTest(t, root, "test_include.mojo", "exit 1\n")

		if outcome := runner.Execute(context.Background(), tc, 1, 1); !outcome.Succeeded {
			t.Errorf("expected -I wrong to be passed, got %+v", outcome)
		}
	})

	t.Run("timeout kills the process", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		c := *cfg
		c.Timeout = 200 * time.Millisecond
		runner := NewRunner(&c, &stdout, &stderr, discardLogger())
		tc := writeTest(t, root, "test_hang.mojo", "echo started\nexec sleep 10\n")

		start := time.Now()
		outcome := runner.Execute(context.Background(), tc, 1, 1)
		elapsed := time.Since(start)

		if outcome.Succeeded || outcome.Kind != domain.OutcomeTimeout {
			t.Errorf("expected timeout, got %+v", outcome)
		}
		if outcome.Stdout != "" || outcome.Stderr != "" {
			t.Errorf("timeout must discard captured output, got %q %q", outcome.Stdout, outcome.Stderr)
		}
		if elapsed > 5*time.Second {
			t.Errorf("runner blocked for %s after timeout", elapsed)
		}
		if !strings.Contains(stdout.String(), "✗ TIMEOUT after 200ms") {
			t.Errorf("missing timeout notice:\n%s", stdout.String())
		}
	})

	t.Run("killed by signal fails", func(t *testing.T) {
		var stdout bytes.Buffer
		runner := NewRunner(cfg, &stdout, io.Discard, discardLogger())
		tc := writeTest(t, root, "test_signal.mojo", "echo before\nkill -9 $$\n")

		outcome := runner.Execute(context.Background(), tc, 1, 1)

		if outcome.Succeeded {
			t.Fatal("expected failure")
		}
		if outcome.Kind != domain.OutcomeFailed || outcome.ExitCode != -1 {
			t.Errorf("expected failed with exit -1, got kind=%s exit=%d", outcome.Kind, outcome.ExitCode)
		}
	})

	t.Run("interpreter without exec bit is a spawn error", func(t *testing.T) {
		var stdout bytes.Buffer
		c := *cfg
		c.Interpreter = filepath.Join(root, "not-executable")
		if err := os.WriteFile(c.Interpreter, []byte("#!/bin/sh\nexit 0\n"), 0644); err != nil {
			t.Fatalf("failed to write interpreter: %v", err)
		}
		runner := NewRunner(&c, &stdout, io.Discard, discardLogger())
		tc := writeTest(t, root, "test_perm.mojo", "exit 0\n")

		outcome := runner.Execute(context.Background(), tc, 1, 1)

		if outcome.Succeeded || outcome.Kind != domain.OutcomeSpawnError {
			t.Errorf("expected spawn error, got kind=%s err=%v", outcome.Kind, outcome.Err)
		}
		if !strings.Contains(stdout.String(), "✗ ERROR:") {
			t.Errorf("missing error notice:\n%s", stdout.String())
		}
	})

	t.Run("canceled context interrupts the process", func(t *testing.T) {
		var stdout bytes.Buffer
		runner := NewRunner(cfg, &stdout, io.Discard, discardLogger())
		tc := writeTest(t, root, "test_interrupt.mojo", "exec sleep 10\n")

		ctx, cancel := context.WithCancel(context.Background())
		timer := time.AfterFunc(200*time.Millisecond, cancel)
		defer timer.Stop()
		defer cancel()

		outcome := runner.Execute(ctx, tc, 1, 1)

		if outcome.Succeeded || outcome.Kind != domain.OutcomeCanceled {
			t.Errorf("expected canceled, got kind=%s err=%v", outcome.Kind, outcome.Err)
		}
		if strings.Contains(stdout.String(), "✗ ERROR:") {
			t.Errorf("interruption must not be reported as a spawn error:\n%s", stdout.String())
		}
		if !strings.Contains(stdout.String(), "✗ INTERRUPTED") {
			t.Errorf("missing interrupt notice:\n%s", stdout.String())
		}
	})

	t.Run("missing interpreter is a spawn error", func(t *testing.T) {
		var stdout bytes.Buffer
		c := *cfg
		c.Interpreter = filepath.Join(root, "no-such-interpreter")
		runner := NewRunner(&c, &stdout, io.Discard, discardLogger())
		tc := writeTest(t, root, "test_gamma.mojo", "exit 0\n")

		outcome := runner.Execute(context.Background(), tc, 1, 1)

		if outcome.Succeeded || outcome.Kind != domain.OutcomeSpawnError {
			t.Errorf("expected spawn error, got %+v", outcome)
		}
		if outcome.Err == nil {
			t.Error("expected the spawn error to be recorded")
		}
		if !strings.Contains(stdout.String(), "✗ ERROR:") {
			t.Errorf("missing error notice:\n%s", stdout.String())
		}
	})
}
