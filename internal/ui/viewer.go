package ui

import "iniharness/internal/domain"

// Viewer displays the outcomes of a test run in an interactive TUI
type Viewer interface {
	View(summary domain.SuiteSummary) error
}
