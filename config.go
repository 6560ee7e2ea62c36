package gobench

// Config holds the externally-supplied parameters the core treats as
// constants (spec.md §6).
type Config struct {
	// MinTime is the default minimum per-trial duration, in seconds.
	MinTime float64
	// Repetitions is the default repetition count.
	Repetitions int
	// ReportAggregatesOnly suppresses non-aggregate rows in both
	// reporters.
	ReportAggregatesOnly bool
	// DisplayAggregatesOnly suppresses non-aggregate rows only in the
	// display reporter.
	DisplayAggregatesOnly bool
}

// DefaultConfig returns the documented default Configurable Parameters.
func DefaultConfig() Config {
	return Config{
		MinTime:     0.5,
		Repetitions: 1,
	}
}

// MaxIterationsCap is the hard cap on iterations per trial (spec.md §6).
const MaxIterationsCap uint64 = 1_000_000_000

// significanceThreshold is the fraction of MinTime a trial's measured
// seconds must exceed to be considered "significant" (spec.md §4.4 step
// 10, glossary "Significance").
const significanceThreshold = 0.1

// overshootFactor biases the next trial's iteration count to comfortably
// exceed MinTime (spec.md §4.4 step 10).
const overshootFactor = 1.4

// nonSignificantMultiplierCap bounds how aggressively iters can grow off
// the back of a single non-significant (noise-dominated) trial.
const nonSignificantMultiplierCap = 10.0

// cpuRunawayFactor is the "defensive exit" multiple of MinTime that
// real_time_used must reach, while the CPU-time basis is in effect, to
// force a report regardless of measured seconds (spec.md §4.4 step 7,
// §9 Open Questions).
const cpuRunawayFactor = 5.0
