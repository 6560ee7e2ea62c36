// Package discovery implements the registration DSL and regex filter
// matching spec.md §1 names as an external collaborator of the core: "a
// regex-based discovery layer supplies a flat list of Instances to the
// core." None of this package's logic participates in iteration control,
// timing, or aggregation — it only produces []gobench.Instance values for
// an Orchestrator to run.
package discovery

import "github.com/gobench-dev/gobench"

// Builder accumulates registration parameters for one named benchmark
// family and materializes them into one gobench.Instance per
// args x threads combination, in the manner of the fluent
// Register(name, fn)->Arg(n)->Threads(n) chains the original harness this
// system was modeled on exposes.
type Builder struct {
	name string
	body gobench.BenchmarkFunc

	argSets [][]int64
	threads []int

	iterations  uint64
	repetitions int
	minTime     float64

	useManualTime bool
	useRealTime   bool
	timeUnit      gobench.TimeUnit

	complexity       gobench.Complexity
	complexityLambda gobench.ComplexityFunc

	statistics []gobench.StatisticDescriptor
	aggMode    gobench.AggregationReportMode
}

var registry []*Builder

// Register starts a new benchmark family registration. The returned
// Builder can be further configured before the next call to All.
func Register(name string, body gobench.BenchmarkFunc) *Builder {
	b := &Builder{name: name, body: body}
	registry = append(registry, b)
	return b
}

// Reset clears the global registry; primarily useful in tests.
func Reset() {
	registry = nil
}

// Arg adds one single-argument Instance.
func (b *Builder) Arg(x int64) *Builder {
	b.argSets = append(b.argSets, []int64{x})
	return b
}

// Args adds one multi-argument Instance.
func (b *Builder) Args(xs ...int64) *Builder {
	b.argSets = append(b.argSets, append([]int64(nil), xs...))
	return b
}

// Range adds one Arg for lo and for each successive doubling of it that
// does not exceed hi (the powers of two in [lo, hi] when lo is 1).
func (b *Builder) Range(lo, hi int64) *Builder {
	for n := lo; n <= hi; n *= 2 {
		b.Arg(n)
		if n == 0 {
			break
		}
	}
	return b
}

// Threads adds n to the set of thread counts this family runs under. A
// family with no Threads call runs single-threaded.
func (b *Builder) Threads(n int) *Builder {
	b.threads = append(b.threads, n)
	return b
}

// Iterations sets an explicit iteration count (0 leaves auto-selection).
func (b *Builder) Iterations(n uint64) *Builder {
	b.iterations = n
	return b
}

// Repetitions sets a per-family repetition count override.
func (b *Builder) Repetitions(n int) *Builder {
	b.repetitions = n
	return b
}

// MinTime sets a per-family minimum trial duration override, in seconds.
func (b *Builder) MinTime(seconds float64) *Builder {
	b.minTime = seconds
	return b
}

// UseManualTime selects manual time as this family's time basis.
func (b *Builder) UseManualTime() *Builder {
	b.useManualTime = true
	return b
}

// UseRealTime selects wall time as this family's time basis.
func (b *Builder) UseRealTime() *Builder {
	b.useRealTime = true
	return b
}

// Unit sets the display time unit.
func (b *Builder) Unit(u gobench.TimeUnit) *Builder {
	b.timeUnit = u
	return b
}

// Complexity declares this family's complexity curve for big-O fitting.
func (b *Builder) Complexity(c gobench.Complexity) *Builder {
	b.complexity = c
	return b
}

// ComplexityLambda sets the custom cost function used when Complexity is
// gobench.OLambda.
func (b *Builder) ComplexityLambda(f gobench.ComplexityFunc) *Builder {
	b.complexity = gobench.OLambda
	b.complexityLambda = f
	return b
}

// Statistics sets the statistic descriptors aggregated when this family
// runs with more than one repetition.
func (b *Builder) Statistics(stats ...gobench.StatisticDescriptor) *Builder {
	b.statistics = stats
	return b
}

// AggregationReportMode overrides the global aggregation display/file
// flags for this family.
func (b *Builder) AggregationReportMode(mode gobench.AggregationReportMode) *Builder {
	b.aggMode = mode
	return b
}

// instances materializes this Builder's args x threads cross product into
// Instances, marking the last one as the complexity family's closer.
func (b *Builder) instances() []gobench.Instance {
	argSets := b.argSets
	if len(argSets) == 0 {
		argSets = [][]int64{nil}
	}
	threads := b.threads
	if len(threads) == 0 {
		threads = []int{1}
	}

	out := make([]gobench.Instance, 0, len(argSets)*len(threads))
	for _, args := range argSets {
		for _, t := range threads {
			out = append(out, gobench.Instance{
				Name:                  b.name,
				Body:                  b.body,
				Args:                  args,
				Threads:               t,
				Iterations:            b.iterations,
				Repetitions:           b.repetitions,
				MinTime:               b.minTime,
				UseManualTime:         b.useManualTime,
				UseRealTime:           b.useRealTime,
				TimeUnit:              b.timeUnit,
				Complexity:            b.complexity,
				ComplexityLambda:      b.complexityLambda,
				Statistics:            b.statistics,
				AggregationReportMode: b.aggMode,
			})
		}
	}
	if b.complexity != gobench.ComplexityNone && len(out) > 0 {
		out[len(out)-1].LastBenchmarkInstance = true
	}
	return out
}

// All materializes every registered Builder into a flat Instance list, in
// registration order.
func All() []gobench.Instance {
	var out []gobench.Instance
	for _, b := range registry {
		out = append(out, b.instances()...)
	}
	return out
}
