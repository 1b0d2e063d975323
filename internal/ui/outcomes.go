package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"iniharness/internal/domain"
)

// OutcomeViewer displays test outcomes in an interactive TUI
type OutcomeViewer struct{}

// NewOutcomeViewer creates a new OutcomeViewer
func NewOutcomeViewer() *OutcomeViewer {
	return &OutcomeViewer{}
}

// View displays the outcomes of a finished run until the user quits
func (ov *OutcomeViewer) View(summary domain.SuiteSummary) error {
	if len(summary.Outcomes) == 0 {
		color.Yellow("Nothing to browse")
		return nil
	}

	failuresOnly := false
	visible := visibleOutcomes(summary.Outcomes, failuresOnly)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		mode := "all"
		if failuresOnly {
			mode = "failures only"
		}
		headerView.SetText(fmt.Sprintf(
			" %d suites, %d failed (%s) | ↑↓ navigate, → details, ← back, [yellow]F[white] toggle failures, Q quit ",
			summary.Total, len(summary.FailedNames), mode,
		))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		outcome := summary.Outcomes[visible[index]]
		statsView.SetText(formatOutcomeStats(outcome))
		detailsView.SetText(formatOutcomeDetails(outcome))
		detailsView.ScrollToBeginning()
	}

	fillList := func() {
		list.Clear()
		for n, i := range visible {
			list.AddItem(listItemText(n, summary.Outcomes[i]), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'f', 'F':
				failuresOnly = !failuresOnly
				visible = visibleOutcomes(summary.Outcomes, failuresOnly)
				fillList()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	fillList()

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// visibleOutcomes returns the indexes of outcomes shown in the list
func visibleOutcomes(outcomes []domain.TestOutcome, failuresOnly bool) []int {
	indexes := make([]int, 0, len(outcomes))
	for i, o := range outcomes {
		if failuresOnly && o.Succeeded {
			continue
		}
		indexes = append(indexes, i)
	}
	return indexes
}

func listItemText(n int, outcome domain.TestOutcome) string {
	if outcome.Succeeded {
		return fmt.Sprintf("[green]✓[white] [yellow]%d.[white] %s", n+1, outcome.Case.DisplayName)
	}
	return fmt.Sprintf("[red]✗[white] [yellow]%d.[white] %s", n+1, outcome.Case.DisplayName)
}

// formatOutcomeStats formats the header line above the captured output
func formatOutcomeStats(outcome domain.TestOutcome) string {
	status := "[green]" + outcome.Kind.String() + "[white]"
	if !outcome.Succeeded {
		status = "[red]" + outcome.Kind.String() + "[white]"
	}
	return fmt.Sprintf("[cyan]file:[white] [yellow]%s[white]\n[cyan]status:[white] %s  [cyan]exit:[white] %d  [cyan]time:[white] %s\n",
		outcome.Case.Path, status, outcome.ExitCode, outcome.Duration.Round(time.Millisecond))
}

// formatOutcomeDetails formats captured output using tview color tags
func formatOutcomeDetails(outcome domain.TestOutcome) string {
	var builder strings.Builder

	if outcome.Err != nil && !outcome.Succeeded {
		fmt.Fprintf(&builder, "[red]✗ %s[white]\n\n", tview.Escape(outcome.Err.Error()))
	}

	if outcome.Stdout != "" {
		fmt.Fprintf(&builder, "[yellow]stdout:[white]\n%s\n", tview.Escape(outcome.Stdout))
	}
	if outcome.Stderr != "" {
		fmt.Fprintf(&builder, "[yellow]stderr:[white]\n%s\n", tview.Escape(outcome.Stderr))
	}
	if outcome.Stdout == "" && outcome.Stderr == "" {
		builder.WriteString("[gray](no output captured)[white]\n")
	}

	return builder.String()
}
