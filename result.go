package gobench

import "time"

// Result is the shared, mutex-protected accumulator a ThreadManager holds
// for one trial. The iteration, time, byte/item and counter fields are
// summed across the workers of that trial (the error fields keep the first
// message, ReportLabel the last one written); RealTime and ManualTime are
// later divided by thread count
// by the iteration controller (spec.md §4.4 step 4) since CPU time is a
// measure of total work while real/manual time only make sense as a
// per-thread mean.
type Result struct {
	Iterations uint64

	CPUTime    time.Duration
	RealTime   time.Duration
	ManualTime time.Duration

	BytesProcessed uint64
	ItemsProcessed uint64

	ComplexityN int64

	Counters map[string]Counter

	HasError     bool
	ErrorMessage string
	ReportLabel  string
}

func newResult() *Result {
	return &Result{Counters: make(map[string]Counter)}
}

// mergeCounters folds src into the Result's Counters map, summing raw
// values; reduction (kAvgThreads, kAvgIterations, per-second, ...) is
// applied once the trial's Result is complete, by finalizeCounters in
// buildRun.
func (r *Result) mergeCounters(src map[string]Counter) {
	for name, c := range src {
		existing, ok := r.Counters[name]
		if !ok {
			r.Counters[name] = c
			continue
		}
		existing.Value += c.Value
		r.Counters[name] = existing
	}
}

// setErrorIfUnset implements the "first non-empty message wins" rule
// (spec.md §7, §9). Callers must hold the ThreadManager's mutex.
func (r *Result) setErrorIfUnset(message string) {
	if !r.HasError {
		r.HasError = true
		r.ErrorMessage = message
	}
}
