package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"iniharness/internal/discovery"
	"iniharness/internal/domain"
)

// ruleWidth is the width of the separator printed above the summary
const ruleWidth = 50

// Formatter formats and displays test runner output
type Formatter struct {
	out    io.Writer
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer, parser *discovery.Parser) *Formatter {
	return &Formatter{
		out:    out,
		parser: parser,
	}
}

// PrintSuiteHeader prints the banner shown before discovery
func (f *Formatter) PrintSuiteHeader(projectName string) {
	color.New(color.FgCyan).Fprintf(f.out, "=== %s Test Suite ===\n", projectName)
	fmt.Fprintln(f.out)
}

// PrintNoTests prints the diagnostic for an empty test directory
func (f *Formatter) PrintNoTests() {
	color.New(color.FgYellow).Fprintln(f.out, "No test files found!")
}

// PrintFound prints the number of discovered test suites
func (f *Formatter) PrintFound(count int) {
	fmt.Fprintf(f.out, "Found %d test suites\n", count)
	fmt.Fprintln(f.out)
}

// PrintSummary prints the final verdict and every failed test file
func (f *Formatter) PrintSummary(summary domain.SuiteSummary) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, strings.Repeat("=", ruleWidth))

	if len(summary.FailedNames) > 0 {
		color.New(color.FgRed).Fprintf(f.out, "✗ %d test suite(s) FAILED:\n", len(summary.FailedNames))
		for _, name := range summary.FailedNames {
			fmt.Fprintf(f.out, "  - %s\n", name)
		}
		return
	}

	color.New(color.FgGreen).Fprintf(f.out, "✓ All %d test suites PASSED\n", summary.Total)
}

// PrintTestList prints discovered test files as a tree, each with its test functions
func (f *Formatter) PrintTestList(cases []domain.TestCase) error {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test file(s):\n\n", len(cases))

	for i, tc := range cases {
		functions, err := f.parser.FindTestFunctions(tc.Path)
		if err != nil {
			return err
		}

		isLastFile := i == len(cases)-1
		branch, indent := "├── ", "│   "
		if isLastFile {
			branch, indent = "└── ", "    "
		}
		color.New(color.FgCyan).Fprintf(f.out, "%s%s", branch, tc.FileName)
		fmt.Fprintf(f.out, " (%s)\n", tc.DisplayName)

		if len(functions) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test functions found)"))
			continue
		}
		for j, fn := range functions {
			prefix := "├── "
			if j == len(functions)-1 {
				prefix = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", indent, prefix, color.YellowString(fn))
		}
	}

	return nil
}
