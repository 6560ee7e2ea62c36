// Package reporters implements the Reporter interface gobench's
// Orchestrator drives: console, JSON, CSV, and Prometheus output. None of
// this package is part of the core adaptive controller — spec.md §1 names
// output formatting explicitly out of scope — but a runnable harness needs
// at least one concrete Reporter, built the way the teacher repo's
// benchmark_reporter.go builds its console output.
package reporters

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/gobench-dev/gobench"
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	nameStyle  = lipgloss.NewStyle().Bold(true)
	fadedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Console reports results to a terminal, coloring the OK/ERROR row
// markers and aligning
// columns to the Orchestrator's computed name-field width. This mirrors
// the structure of the teacher's BenchmarkReporter (reportBenchmark,
// formatDuration) generalized from a pass/fail-only result to gobench's
// fuller Run record.
type Console struct {
	Out   io.Writer
	Err   io.Writer
	Color bool // zero value auto-detects from Out

	nameWidth int
	colorSet  bool
}

// NewConsole constructs a Console reporter writing to out/errOut. Color
// output is auto-detected via go-isatty/golang.org/x/term unless the
// caller sets Color explicitly after construction.
func NewConsole(out, errOut io.Writer) *Console {
	c := &Console{Out: out, Err: errOut}
	c.Color = c.autoDetectColor()
	c.colorSet = true
	return c
}

func (c *Console) autoDetectColor() bool {
	if c.colorSet {
		return c.Color
	}
	if f, ok := c.Out.(interface{ Fd() uintptr }); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// ReportContext records the display width and prints a banner line naming
// the executable, analogous to the teacher's suite-header line in
// ReportSuite.
func (c *Console) ReportContext(ctx gobench.ReportContext) bool {
	c.nameWidth = ctx.NameFieldWidth
	if !c.colorSet {
		c.Color = c.autoDetectColor()
	}
	width := c.nameWidth
	if width == 0 {
		if cols, _, err := term.GetSize(0); err == nil && cols > 0 {
			width = cols / 2
		} else {
			width = 30
		}
	}
	fmt.Fprintf(c.Out, "%s\n", c.style(nameStyle, fmt.Sprintf("Running %s", ctx.ExecutableName)))
	fmt.Fprintf(c.Out, "%-*s %14s %14s %12s\n", width, "Benchmark", "Time", "CPU", "Iterations")
	return true
}

// ReportRuns prints one row per Run.
func (c *Console) ReportRuns(runs []gobench.Run) {
	for _, r := range runs {
		c.reportOne(r)
	}
}

func (c *Console) reportOne(r gobench.Run) {
	name := r.Name
	if r.AggregateName != "" {
		name = fmt.Sprintf("%s_%s", r.Name, r.AggregateName)
	}

	if r.Error {
		fmt.Fprintf(c.Out, "%-*s %s %s\n", c.nameWidth, name, c.style(failStyle, "ERROR"), r.ErrorMessage)
		return
	}

	fmt.Fprintf(c.Out, "%s %-*s %14s %14s %12d\n",
		c.style(passStyle, "OK"), c.nameWidth, name,
		formatDuration(r.RealTime), formatDuration(r.CPUTime), r.Iterations)

	if r.BytesPerSecond > 0 {
		fmt.Fprintf(c.Out, "%*s %.2f bytes/s\n", c.nameWidth, "", r.BytesPerSecond)
	}
	if r.ItemsPerSecond > 0 {
		fmt.Fprintf(c.Out, "%*s %.2f items/s\n", c.nameWidth, "", r.ItemsPerSecond)
	}
	if r.Memory != nil {
		fmt.Fprintf(c.Out, "%*s %d allocs, %d bytes peak\n", c.nameWidth, "",
			r.Memory.NumAllocs, r.Memory.MaxBytesUsed)
	}
	if r.ReportLabel != "" {
		fmt.Fprintf(c.Out, "%*s %s\n", c.nameWidth, "", c.style(fadedStyle, r.ReportLabel))
	}
}

// Finalize flushes nothing (the underlying io.Writer owns buffering) but
// satisfies the Reporter interface, matching the teacher's no-op-shaped
// finalize hooks.
func (c *Console) Finalize() {}

func (c *Console) style(s lipgloss.Style, text string) string {
	if !c.Color {
		return text
	}
	return s.Render(text)
}

// formatDuration picks a human-scaled unit, adapted from the teacher's
// benchmark_reporter.go formatDuration.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%d ns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2f us", float64(d.Nanoseconds())/1000.0)
	case d < time.Second:
		return fmt.Sprintf("%.2f ms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}
