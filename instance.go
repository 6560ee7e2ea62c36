package gobench

import (
	"fmt"
	"strings"
)

// TimeUnit selects the unit a Run's timings are displayed in. The core
// only carries the value through; formatting belongs to reporters.
type TimeUnit int

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
)

func (u TimeUnit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "us"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	default:
		return "s"
	}
}

// Complexity names the asymptotic curve an Instance family should be
// fitted against, or the none/lambda variants.
type Complexity int

const (
	ComplexityNone Complexity = iota
	O1
	OLogN
	ON
	ONLogN
	ON2
	ON3
	OAuto
	OLambda
)

func (c Complexity) String() string {
	switch c {
	case ComplexityNone:
		return "none"
	case O1:
		return "O(1)"
	case OLogN:
		return "O(logN)"
	case ON:
		return "O(N)"
	case ONLogN:
		return "O(NlogN)"
	case ON2:
		return "O(N^2)"
	case ON3:
		return "O(N^3)"
	case OAuto:
		return "O(auto)"
	case OLambda:
		return "O(lambda)"
	default:
		return "O(?)"
	}
}

// ComplexityFunc computes the expected cost at n, used when Complexity is
// OLambda.
type ComplexityFunc func(n int64) float64

// Reducer names how a per-thread counter contribution should be combined
// into the trial-wide Result, and later formatted. kAvgThreads and
// kAvgIterations are supplemental to the reducers named explicitly in
// spec.md's data model (see SPEC_FULL.md §4).
type Reducer int

const (
	ReduceSum Reducer = iota
	ReducePerSecond
	ReducePerIteration
	ReduceAvgThreads
	ReduceAvgIterations
)

// Counter is a single named, reduced value accumulated during a trial.
type Counter struct {
	Value   float64
	Reducer Reducer
}

// StatisticDescriptor names a reducer applied across a repetition's
// non-aggregate Run records to produce one aggregate Run per descriptor.
type StatisticDescriptor struct {
	Name    string
	Compute func(values []float64) float64
}

// AggregationReportMode is a bitset controlling whether non-aggregate rows
// are suppressed for the display and/or file reporter, overriding the
// global Config flags of the same name.
type AggregationReportMode int

const (
	// AggregationUnspecified means "fall back to the global Config flags".
	AggregationUnspecified AggregationReportMode = 0
	AggregationDisplayOnly AggregationReportMode = 1 << 0
	AggregationFileOnly    AggregationReportMode = 1 << 1
)

// BenchmarkFunc is the body of a registered benchmark. It must drive
// state.KeepRunning() to completion; returning before KeepRunning reports
// false is a fatal usage error (spec.md §7).
type BenchmarkFunc func(state *State)

// Instance is a single parameterization of a registered benchmark: one
// argument tuple and one thread count. It is read-only input, constructed
// by the discovery layer and consumed by RunRepetitions.
type Instance struct {
	Name    string
	Body    BenchmarkFunc
	Args    []int64
	Threads int

	// Iterations is the explicit iteration count; 0 means "auto" (the
	// iteration controller chooses).
	Iterations uint64

	// Repetitions is the per-instance repetition count; 0 falls back to
	// Config.Repetitions.
	Repetitions int

	// MinTime is the per-instance minimum trial duration in seconds; 0
	// falls back to Config.MinTime.
	MinTime float64

	UseManualTime bool
	UseRealTime   bool
	TimeUnit      TimeUnit

	Complexity       Complexity
	ComplexityLambda ComplexityFunc

	Statistics []StatisticDescriptor

	AggregationReportMode AggregationReportMode

	// LastBenchmarkInstance marks the final Instance in a complexity
	// family; it triggers the big-O fit over the family's accumulated
	// Run records.
	LastBenchmarkInstance bool
}

// DisplayName renders the Instance's family name the way the harness
// reports it: base name, then a '/'-joined suffix of its arguments, then
// "/threads:N" when running with more than one thread. This mirrors the
// naming convention the original C++ source applies when registering
// argument-parameterized and multi-threaded benchmarks (see SPEC_FULL.md
// §4).
func (inst *Instance) DisplayName() string {
	var b strings.Builder
	b.WriteString(inst.Name)
	for _, a := range inst.Args {
		fmt.Fprintf(&b, "/%d", a)
	}
	if inst.Threads > 1 {
		fmt.Fprintf(&b, "/threads:%d", inst.Threads)
	}
	return b.String()
}

// Range returns the i'th captured argument, or 0 if out of range.
func (inst *Instance) Range(i int) int64 {
	if i < 0 || i >= len(inst.Args) {
		return 0
	}
	return inst.Args[i]
}

// MemoryResult is attached to a Run when a MemoryManager is registered and
// the trial should-reports (spec.md §4.4 step 8).
type MemoryResult struct {
	NumAllocs    int64
	MaxBytesUsed int64
}

// MemoryManager is the optional memory-accounting probe collaborator.
// Registered at most once, process-wide, before any run; invoked only from
// the repetition driver's single thread.
type MemoryManager interface {
	Start()
	Stop() MemoryResult
}

var globalMemoryManager MemoryManager

// RegisterMemoryManager installs the process-wide memory probe. It must be
// called before any benchmark runs and must not be called concurrently
// with a run in progress.
func RegisterMemoryManager(m MemoryManager) {
	globalMemoryManager = m
}
