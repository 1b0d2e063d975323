package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/ini.v1"

	"iniharness/internal/config"
	"iniharness/internal/domain"
)

// bannerWidth is the width of the report's section rules
const bannerWidth = 70

// Progress reports scenario progress while the report is printed
type Progress interface {
	Start(title string)
	Done()
	Clear()
	Finish()
}

// Runner measures the reference INI implementation over the scenario
// registries and prints the report.
type Runner struct {
	config   *config.Config
	out      io.Writer
	progress Progress
	logger   *slog.Logger
}

// NewRunner creates a new Runner printing its report to out
func NewRunner(cfg *config.Config, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		config: cfg,
		out:    out,
		logger: logger,
	}
}

// SetProgress sets the progress bar updated between scenarios
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// Run executes every parse scenario, then every write scenario.
// The first workload error aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	parse := ParseScenarios(r.config)
	write := WriteScenarios(r.config)

	r.rule()
	fmt.Fprintf(r.out, "INI Baseline Benchmarks (%s)\n", r.config.Bench.Label)
	r.rule()
	fmt.Fprintf(r.out, "\nThese establish baseline performance for comparison with %s.\n", r.config.ProjectName)
	fmt.Fprintf(r.out, "Run the %s benchmarks to see its performance.\n", r.config.ProjectName)

	fmt.Fprintln(r.out, "\n\nParsing Benchmarks (ini.Load()):")
	r.rule()
	for _, s := range parse {
		if err := r.runScenario(ctx, s); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.out, "\n\nWriting Benchmarks (File.WriteTo()):")
	r.rule()
	for _, s := range write {
		if err := r.runScenario(ctx, s); err != nil {
			return err
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}

	fmt.Fprintln(r.out)
	r.rule()
	color.New(color.FgGreen).Fprintln(r.out, "Benchmark Complete")
	r.rule()
	fmt.Fprintln(r.out, "\nNOTE: timings are the mean of a fixed iteration count, with no warm-up.")
	fmt.Fprintf(r.out, "%s aims to be competitive for typical config file sizes.\n", r.config.ProjectName)

	return nil
}

// runScenario measures one scenario and prints its result line
func (r *Runner) runScenario(ctx context.Context, s domain.Scenario) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.progress != nil {
		r.progress.Start(s.Title)
	}

	sample, err := measure(s)
	if err != nil {
		if r.progress != nil {
			r.progress.Clear()
		}
		return err
	}

	if r.progress != nil {
		r.progress.Done()
		r.progress.Clear()
	}

	r.logger.Debug("scenario measured",
		slog.String("scenario", s.ID),
		slog.Int("iterations", sample.Iterations),
		slog.Duration("elapsed", sample.Elapsed),
	)

	fmt.Fprintf(r.out, "\n%s:\n", s.Title)
	fmt.Fprintf(r.out, "  %s:  %s per %s  |  %s\n",
		r.config.Bench.Label,
		FormatTime(sample.AverageSeconds()),
		s.Kind.Op(),
		FormatRate(sample.Rate()),
	)

	return nil
}

// measure prepares and samples the scenario's workload
func measure(s domain.Scenario) (domain.BenchmarkSample, error) {
	op, err := workload(s)
	if err != nil {
		return domain.BenchmarkSample{}, &WorkloadError{Scenario: s.ID, Err: err}
	}

	sample, err := Sample(s.Iterations, op)
	if err != nil {
		var werr *WorkloadError
		if errors.As(err, &werr) {
			werr.Scenario = s.ID
		}
		return domain.BenchmarkSample{}, err
	}
	return sample, nil
}

// workload builds the timed operation for a scenario. For write scenarios
// the document is parsed here, outside the timed region.
func workload(s domain.Scenario) (func() error, error) {
	source := []byte(s.Fixture.Text)

	switch s.Kind {
	case domain.ScenarioParse:
		return func() error {
			_, err := ini.Load(source)
			return err
		}, nil
	case domain.ScenarioWrite:
		file, err := ini.Load(source)
		if err != nil {
			return nil, fmt.Errorf("prepare %s fixture: %w", s.Fixture.Name, err)
		}
		return func() error {
			var buf bytes.Buffer
			if _, err := file.WriteTo(&buf); err != nil {
				return err
			}
			_ = buf.String()
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown scenario kind %d", s.Kind)
	}
}

func (r *Runner) rule() {
	fmt.Fprintln(r.out, strings.Repeat("=", bannerWidth))
}
