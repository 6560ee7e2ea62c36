package gobench

import "unicode/utf8"

// ReportContext carries the display parameters an Orchestrator computes
// once for a whole run, handed to each Reporter's ReportContext call.
type ReportContext struct {
	NameFieldWidth int
	ExecutableName string
}

// Reporter is the interface the orchestrator drives; concrete
// implementations (console/json/csv/metrics) live in package reporters
// and consume only already-finalized Run records (spec.md §1, §6).
type Reporter interface {
	ReportContext(ctx ReportContext) bool
	ReportRuns(runs []Run)
	Finalize()
}

// Orchestrator iterates a list of Instances, wires up to two Reporters
// (display and file), and dispatches each Instance to RunRepetitions
// (spec.md §4.6).
type Orchestrator struct {
	Display        Reporter
	File           Reporter
	Config         Config
	Clock          Clock
	ExecutableName string
}

// NewOrchestrator constructs an Orchestrator with DefaultConfig and
// SystemClock; override the returned value's fields as needed before
// calling Run.
func NewOrchestrator(display, file Reporter) *Orchestrator {
	return &Orchestrator{
		Display: display,
		File:    file,
		Config:  DefaultConfig(),
		Clock:   SystemClock,
	}
}

// Run dispatches every Instance to RunRepetitions and streams its Run
// records to the wired reporters, grouping Instances into complexity
// families by Name. It returns false if either reporter rejects the
// ReportContext (spec.md §4.6: "if any returns false, the run is
// aborted").
func (o *Orchestrator) Run(instances []Instance) bool {
	ctx := ReportContext{
		NameFieldWidth: nameFieldWidth(instances),
		ExecutableName: o.ExecutableName,
	}

	if o.Display != nil && !o.Display.ReportContext(ctx) {
		return false
	}
	if o.File != nil && !o.File.ReportContext(ctx) {
		return false
	}

	families := make(map[string]*complexityFamily)

	for i := range instances {
		inst := &instances[i]

		family := families[inst.Name]
		if family == nil {
			family = newComplexityFamily()
			families[inst.Name] = family
		}

		nonAggregates, aggregatesOnly := RunRepetitions(inst, o.Config, family, o.Clock)
		displayAggOnly, fileAggOnly := ResolveAggregationFlags(inst, o.Config)

		o.dispatch(o.Display, nonAggregates, aggregatesOnly, displayAggOnly)
		o.dispatch(o.File, nonAggregates, aggregatesOnly, fileAggOnly)

		if o.Display != nil {
			o.Display.Finalize()
		}
		if o.File != nil {
			o.File.Finalize()
		}
	}

	return true
}

func (o *Orchestrator) dispatch(r Reporter, nonAggregates, aggregatesOnly []Run, aggregatesOnlyFlag bool) {
	if r == nil {
		return
	}
	if !aggregatesOnlyFlag {
		r.ReportRuns(nonAggregates)
	}
	if len(aggregatesOnly) > 0 {
		r.ReportRuns(aggregatesOnly)
	}
}

// nameFieldWidth computes a display width from the longest Instance
// display name and statistic descriptor tag, for reporters that align
// columns (spec.md §4.6).
func nameFieldWidth(instances []Instance) int {
	width := 0
	for i := range instances {
		inst := &instances[i]
		if w := utf8.RuneCountInString(inst.DisplayName()); w > width {
			width = w
		}
		for _, s := range inst.Statistics {
			tag := inst.DisplayName() + "_" + s.Name
			if w := utf8.RuneCountInString(tag); w > width {
				width = w
			}
		}
	}
	return width
}
