package gobench

// finalizeCounters applies each counter's Reducer to the raw, summed-across-
// threads value merged into a trial's Result, the way the original C++
// implementation's internal::Finish does once per trial after every
// worker's contribution has been merged (original_source/src/benchmark.cc,
// RunBenchmark: "internal::Finish(&report.counters, results.iterations,
// seconds, b.threads)"). ReduceSum is left untouched — the merged value
// already is the sum. Everything else divides that sum down to the
// per-second, per-iteration, or per-thread figure the reducer names.
func finalizeCounters(raw map[string]Counter, threads int, iterations uint64, basisSeconds float64) map[string]Counter {
	if len(raw) == 0 {
		return raw
	}
	out := make(map[string]Counter, len(raw))
	for name, c := range raw {
		switch c.Reducer {
		case ReducePerSecond:
			if basisSeconds > 0 {
				c.Value /= basisSeconds
			}
		case ReducePerIteration, ReduceAvgIterations:
			if iterations > 0 {
				c.Value /= float64(iterations)
			}
		case ReduceAvgThreads:
			if threads > 0 {
				c.Value /= float64(threads)
			}
		}
		out[name] = c
	}
	return out
}
