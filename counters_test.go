package gobench

import "testing"

func TestFinalizeCountersAppliesReducer(t *testing.T) {
	raw := map[string]Counter{
		"sum":           {Value: 100, Reducer: ReduceSum},
		"rate":          {Value: 100, Reducer: ReducePerSecond},
		"perIter":       {Value: 100, Reducer: ReducePerIteration},
		"avgThreads":    {Value: 100, Reducer: ReduceAvgThreads},
		"avgIterations": {Value: 100, Reducer: ReduceAvgIterations},
	}

	out := finalizeCounters(raw, 4, 10, 2.0)

	cases := map[string]float64{
		"sum":           100,
		"rate":          50,
		"perIter":       10,
		"avgThreads":    25,
		"avgIterations": 10,
	}
	for name, want := range cases {
		if got := out[name].Value; got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestFinalizeCountersGuardsAgainstZeroDivisors(t *testing.T) {
	raw := map[string]Counter{
		"rate":       {Value: 100, Reducer: ReducePerSecond},
		"perIter":    {Value: 100, Reducer: ReducePerIteration},
		"avgThreads": {Value: 100, Reducer: ReduceAvgThreads},
	}

	out := finalizeCounters(raw, 0, 0, 0)

	for name, c := range raw {
		if got := out[name].Value; got != c.Value {
			t.Errorf("%s = %v, want unchanged %v when its divisor is zero", name, got, c.Value)
		}
	}
}

func TestBuildRunFinalizesCountersAndSkipsThemOnError(t *testing.T) {
	inst := &Instance{Name: "Counted", Threads: 2}

	ok := Result{
		Iterations: 10,
		Counters:   map[string]Counter{"ops": {Value: 100, Reducer: ReduceAvgThreads}},
	}
	run := buildRun(inst, 0, 1.0, ok, nil)
	if got := run.Counters["ops"].Value; got != 50 {
		t.Errorf("Counters[ops] = %v, want 50", got)
	}

	failed := Result{
		HasError:   true,
		Iterations: 10,
		Counters:   map[string]Counter{"ops": {Value: 100, Reducer: ReduceAvgThreads}},
	}
	errRun := buildRun(inst, 0, 1.0, failed, nil)
	if errRun.Counters != nil {
		t.Errorf("Counters = %v, want nil on an errored Run", errRun.Counters)
	}
}
