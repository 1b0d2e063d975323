package ui

import (
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar tracks completed benchmark scenarios
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar over count scenarios.
// When visible is false nothing is drawn.
func NewProgressBar(count int, w io.Writer, visible bool) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Benchmarking: ")),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionClearOnFinish(),
	)

	return &ProgressBar{bar: bar}
}

// Start describes the scenario about to run
func (p *ProgressBar) Start(title string) {
	p.bar.Describe(color.CyanString("Benchmarking: ") + title)
}

// Done marks one scenario as measured
func (p *ProgressBar) Done() {
	_ = p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// Clear erases the bar so report lines can be printed underneath it
func (p *ProgressBar) Clear() {
	_ = p.bar.Clear()
}
