package gobench

// complexityFamily accumulates successful non-aggregate Run records across
// the Instances of one complexity family (spec.md §4.5). It is owned
// exclusively by the caller of RunRepetitions and accessed from a single
// thread — never shared across goroutines.
type complexityFamily struct {
	reports []Run
}

// newComplexityFamily returns a fresh, empty family accumulator.
func newComplexityFamily() *complexityFamily {
	return &complexityFamily{}
}

// RunRepetitions drives one Instance through the iteration controller
// Repetitions times, collecting Run records into non-aggregate and
// aggregate buckets (spec.md §4.5). family accumulates Run records across
// the Instances of one complexity family when Instance.Complexity is set;
// pass the same *complexityFamily to every Instance of a family and a
// fresh one per family.
func RunRepetitions(inst *Instance, cfg Config, family *complexityFamily, clock Clock) (nonAggregates, aggregatesOnly []Run) {
	repeats := inst.Repetitions
	if repeats == 0 {
		repeats = cfg.Repetitions
	}
	if repeats < 1 {
		repeats = 1
	}

	nonAggregates = make([]Run, 0, repeats)
	for rep := 0; rep < repeats; rep++ {
		nonAggregates = append(nonAggregates, runTrialGrowth(inst, rep, cfg, clock))
	}

	if repeats > 1 {
		aggregatesOnly = ComputeStatistics(nonAggregates, inst.Statistics)
	}

	if inst.Complexity != ComplexityNone {
		for _, run := range nonAggregates {
			if !run.Error {
				family.reports = append(family.reports, run)
			}
		}
		if inst.LastBenchmarkInstance {
			aggregatesOnly = append(aggregatesOnly, ComputeBigO(family.reports)...)
			family.reports = family.reports[:0]
		}
	}

	return nonAggregates, aggregatesOnly
}

// ResolveAggregationFlags resolves the per-instance
// AggregationReportMode against the global Config flags, producing the
// (displayAggregatesOnly, fileAggregatesOnly) pair the orchestrator uses
// to decide which Run buckets to hand each reporter (spec.md §4.5).
func ResolveAggregationFlags(inst *Instance, cfg Config) (displayAggregatesOnly, fileAggregatesOnly bool) {
	displayAggregatesOnly = cfg.DisplayAggregatesOnly || cfg.ReportAggregatesOnly
	fileAggregatesOnly = cfg.ReportAggregatesOnly

	if inst.AggregationReportMode&AggregationDisplayOnly != 0 {
		displayAggregatesOnly = true
	}
	if inst.AggregationReportMode&AggregationFileOnly != 0 {
		fileAggregatesOnly = true
	}
	return displayAggregatesOnly, fileAggregatesOnly
}
