// Package report turns scenario results into console output and stored runs.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/themizzi/shopcheck/internal/scenario"
)

var (
	passedColor  = color.New(color.FgGreen)
	failedColor  = color.New(color.FgRed)
	skippedColor = color.New(color.FgYellow)
	suiteColor   = color.New(color.FgCyan, color.Bold)
	detailColor  = color.New(color.FgHiBlack)
)

var statusMarks = map[scenario.Status]string{
	scenario.Passed:  "✓",
	scenario.Failed:  "✗",
	scenario.Skipped: "-",
}

func statusColor(status scenario.Status) *color.Color {
	switch status {
	case scenario.Passed:
		return passedColor
	case scenario.Failed:
		return failedColor
	default:
		return skippedColor
	}
}

// Console prints one line per step and a line per finished suite
type Console struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewConsole creates a console reporter. Verbose also prints the step
// identifiers and the logs of failed steps.
func NewConsole(out io.Writer, verbose, noColor bool) *Console {
	if noColor {
		color.NoColor = true
		text.DisableColors()
	}
	return &Console{out: out, verbose: verbose}
}

// StepFinished prints the outcome of a step
func (c *Console) StepFinished(suite *scenario.Suite, result scenario.StepResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mark := statusColor(result.Status).Sprint(statusMarks[result.Status])
	fmt.Fprintf(c.out, "  %s %s %s\n", mark, detailColor.Sprintf("[%s]", suiteName(suite)), result.Title)

	if c.verbose && result.Context.Value != "" {
		fmt.Fprintf(c.out, "      %s\n", detailColor.Sprint(result.Context))
	}
	if result.Status == scenario.Failed {
		for _, line := range strings.Split(result.Message, "\n") {
			fmt.Fprintf(c.out, "      %s\n", failedColor.Sprint(line))
		}
		if c.verbose {
			for _, line := range result.Logs {
				fmt.Fprintf(c.out, "      %s\n", detailColor.Sprint(line))
			}
		}
	}
}

// SuiteFinished prints the outcome of a suite
func (c *Console) SuiteFinished(result *scenario.SuiteResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	title := result.Title
	if title == "" {
		title = result.BaseContext
	}
	fmt.Fprintf(c.out, "%s %s %s\n",
		suiteColor.Sprint(title),
		statusColor(result.Status).Sprint(result.Status),
		detailColor.Sprintf("(%s)", result.Duration.Round(time.Millisecond)))
	if result.CleanupFailed {
		fmt.Fprintf(c.out, "  %s\n", skippedColor.Sprint("post-condition failed, the shop may need cleaning"))
	}
	if result.Err != nil {
		fmt.Fprintf(c.out, "  %s\n", failedColor.Sprint(result.Err))
	}
}

// Summary renders a table with one row per suite and a total
func (c *Console) Summary(results []*scenario.SuiteResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("CAMPAIGN"),
		text.FgHiCyan.Sprint("STATUS"),
		text.FgHiCyan.Sprint("PASSED"),
		text.FgHiCyan.Sprint("FAILED"),
		text.FgHiCyan.Sprint("SKIPPED"),
		text.FgHiCyan.Sprint("DURATION"),
	})

	var totalPassed, totalFailed, totalSkipped int
	var total time.Duration
	for _, result := range results {
		passed, failed, skipped := result.Counts()
		totalPassed, totalFailed, totalSkipped = totalPassed+passed, totalFailed+failed, totalSkipped+skipped
		total += result.Duration

		t.AppendRow(table.Row{
			result.BaseContext,
			statusColor(result.Status).Sprint(result.Status),
			passed,
			failed,
			skipped,
			result.Duration.Round(time.Millisecond),
		})
	}
	t.AppendFooter(table.Row{"TOTAL", "", totalPassed, totalFailed, totalSkipped, total.Round(time.Millisecond)})
	t.Render()
}

func suiteName(suite *scenario.Suite) string {
	if suite.BaseContext != "" {
		return suite.BaseContext
	}
	return suite.Title
}
