package reporters

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gobench-dev/gobench"
)

// CSV reports results as one row per Run, a common machine-readable
// sibling to Console taken from the same category of output the teacher's
// pack treats as a non-core concern (spec.md §1's "console/json/csv
// reporters").
type CSV struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSV constructs a CSV reporter writing to out.
func NewCSV(out io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(out)}
}

var csvHeader = []string{
	"name", "threads", "iterations", "real_time_ns", "cpu_time_ns",
	"bytes_per_second", "items_per_second", "complexity", "complexity_n",
	"error", "error_message", "label", "run_type", "aggregate_name",
}

func (c *CSV) ReportContext(gobench.ReportContext) bool {
	if !c.wroteHeader {
		c.wroteHeader = true
		return c.w.Write(csvHeader) == nil
	}
	return true
}

func (c *CSV) ReportRuns(runs []gobench.Run) {
	for _, r := range runs {
		runType := "iteration"
		switch r.Kind {
		case gobench.RunAggregate:
			runType = "aggregate"
		case gobench.RunComplexity:
			runType = "complexity"
		}
		_ = c.w.Write([]string{
			r.Name,
			fmt.Sprint(r.Threads),
			fmt.Sprint(r.Iterations),
			fmt.Sprint(r.RealTime.Nanoseconds()),
			fmt.Sprint(r.CPUTime.Nanoseconds()),
			fmt.Sprint(r.BytesPerSecond),
			fmt.Sprint(r.ItemsPerSecond),
			r.Complexity.String(),
			fmt.Sprint(r.ComplexityN),
			fmt.Sprint(r.Error),
			r.ErrorMessage,
			r.ReportLabel,
			runType,
			r.AggregateName,
		})
	}
}

// Finalize flushes the underlying csv.Writer.
func (c *CSV) Finalize() {
	c.w.Flush()
}
