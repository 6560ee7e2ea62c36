package reporters

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gobench-dev/gobench"
)

// JSON reports results as newline-delimited JSON objects, one per Run,
// following the wire-format convention the teacher's benchmark_runner.go
// uses to stream BenchmarkResult values across its harness pipe.
type JSON struct {
	Out io.Writer
	enc *json.Encoder
}

// NewJSON constructs a JSON reporter writing to out.
func NewJSON(out io.Writer) *JSON {
	return &JSON{Out: out, enc: json.NewEncoder(out)}
}

type jsonRun struct {
	Name           string             `json:"name"`
	Threads        int                `json:"threads"`
	Iterations     uint64             `json:"iterations"`
	RealTimeNs     int64              `json:"real_time_ns"`
	CPUTimeNs      int64              `json:"cpu_time_ns"`
	TimeUnit       string             `json:"time_unit"`
	BytesPerSecond float64            `json:"bytes_per_second,omitempty"`
	ItemsPerSecond float64            `json:"items_per_second,omitempty"`
	Complexity     string             `json:"complexity,omitempty"`
	ComplexityN    int64              `json:"complexity_n,omitempty"`
	Counters       map[string]float64 `json:"counters,omitempty"`
	NumAllocs      int64              `json:"num_allocs,omitempty"`
	MaxBytesUsed   int64              `json:"max_bytes_used,omitempty"`
	Error          bool               `json:"error"`
	ErrorMessage   string             `json:"error_message,omitempty"`
	ReportLabel    string             `json:"label,omitempty"`
	RunType        string             `json:"run_type"`
	Aggregate      string             `json:"aggregate_name,omitempty"`
}

// ReportContext writes a single header object naming the run and reports
// whether that header was written without error.
func (j *JSON) ReportContext(ctx gobench.ReportContext) bool {
	return j.enc.Encode(map[string]any{
		"context": map[string]any{
			"executable":       ctx.ExecutableName,
			"name_field_width": ctx.NameFieldWidth,
			"date":             time.Now().Format(time.RFC3339),
		},
	}) == nil
}

// ReportRuns writes one JSON object per Run.
func (j *JSON) ReportRuns(runs []gobench.Run) {
	for _, r := range runs {
		_ = j.enc.Encode(toJSONRun(r))
	}
}

// Finalize is a no-op; encoding/json writes are unbuffered here.
func (j *JSON) Finalize() {}

func toJSONRun(r gobench.Run) jsonRun {
	counters := make(map[string]float64, len(r.Counters))
	for name, c := range r.Counters {
		counters[name] = c.Value
	}

	out := jsonRun{
		Name:           r.Name,
		Threads:        r.Threads,
		Iterations:     r.Iterations,
		RealTimeNs:     r.RealTime.Nanoseconds(),
		CPUTimeNs:      r.CPUTime.Nanoseconds(),
		TimeUnit:       r.TimeUnit.String(),
		BytesPerSecond: r.BytesPerSecond,
		ItemsPerSecond: r.ItemsPerSecond,
		Counters:       counters,
		Error:          r.Error,
		ErrorMessage:   r.ErrorMessage,
		ReportLabel:    r.ReportLabel,
		Aggregate:      r.AggregateName,
	}
	if r.Complexity != gobench.ComplexityNone {
		out.Complexity = r.Complexity.String()
		out.ComplexityN = r.ComplexityN
	}
	if r.Memory != nil {
		out.NumAllocs = r.Memory.NumAllocs
		out.MaxBytesUsed = r.Memory.MaxBytesUsed
	}
	switch r.Kind {
	case gobench.RunAggregate:
		out.RunType = "aggregate"
	case gobench.RunComplexity:
		out.RunType = "complexity"
	default:
		out.RunType = "iteration"
	}
	return out
}
