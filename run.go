package gobench

import (
	"time"

	"github.com/google/uuid"
)

// RunKind distinguishes a normal measured trial from a synthetic row
// produced by statistics/complexity aggregation.
type RunKind int

const (
	RunNormal RunKind = iota
	RunAggregate
	RunComplexity
)

// Run is one finalized report row: a single trial's measurement, or a
// synthetic aggregate/complexity-fit row derived from a family of trials.
type Run struct {
	ID uuid.UUID

	Name    string
	Threads int

	Iterations uint64

	// RealTime is the elapsed time under the Instance's chosen time
	// basis (spec.md §4.4 step 5) — CPU, real, or manual.
	RealTime time.Duration
	CPUTime  time.Duration
	TimeUnit TimeUnit

	BytesPerSecond float64
	ItemsPerSecond float64

	Complexity       Complexity
	ComplexityN      int64
	ComplexityLambda ComplexityFunc

	Counters map[string]Counter

	Memory *MemoryResult

	Error        bool
	ErrorMessage string
	ReportLabel  string

	Statistics []StatisticDescriptor

	Kind RunKind
	// AggregateName names the statistic (e.g. "mean", "stddev") or
	// complexity descriptor ("RMS", "big_o") a Kind != RunNormal row
	// carries.
	AggregateName string
}

func newRunID() uuid.UUID {
	return uuid.New()
}
