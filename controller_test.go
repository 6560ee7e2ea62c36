package gobench

import (
	"testing"
	"time"
)

func countingBenchmark(iters *int) BenchmarkFunc {
	return func(state *State) {
		for state.KeepRunning() {
			*iters++
		}
	}
}

func TestRunTrialGrowthExplicitIterationsReportsImmediately(t *testing.T) {
	var seen int
	inst := &Instance{
		Name:       "Explicit",
		Body:       countingBenchmark(&seen),
		Threads:    1,
		Iterations: 7,
	}
	cfg := DefaultConfig()

	run := runTrialGrowth(inst, 0, cfg, newFakeClockForState(time.Nanosecond))

	if run.Iterations != 7 {
		t.Errorf("Iterations = %d, want 7", run.Iterations)
	}
	if seen != 7 {
		t.Errorf("benchmark body ran %d times, want 7", seen)
	}
	if run.Error {
		t.Errorf("run.Error = true, want false")
	}
}

func TestRunTrialGrowthReportsOnceMinTimeIsReached(t *testing.T) {
	var seen int
	inst := &Instance{
		Name:    "Grows",
		Body:    countingBenchmark(&seen),
		Threads: 1,
	}
	cfg := Config{MinTime: 0.001, Repetitions: 1}

	// The fake clock advances 50ms on every read, so each trial's timed
	// interval measures 100ms of CPU time, which clears MinTime on the
	// first trial's default of 1 iteration.
	run := runTrialGrowth(inst, 0, cfg, newFakeClockForState(50*time.Millisecond))

	if run.Iterations == 0 {
		t.Fatal("expected at least one iteration to have run")
	}
	if run.CPUTime <= 0 {
		t.Errorf("CPUTime = %v, want > 0", run.CPUTime)
	}
}

func TestRunTrialGrowthRepetitionNumGreaterThanZeroReportsImmediately(t *testing.T) {
	var seen int
	inst := &Instance{
		Name:    "SecondRep",
		Body:    countingBenchmark(&seen),
		Threads: 1,
	}
	cfg := Config{MinTime: 1000, Repetitions: 1}

	run := runTrialGrowth(inst, 1, cfg, newFakeClockForState(time.Nanosecond))
	if run.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1 (first trial should report immediately for rep > 0)", run.Iterations)
	}
}

func TestRunTrialGrowthSkipWithErrorReportsImmediately(t *testing.T) {
	inst := &Instance{
		Name: "Errors",
		Body: func(state *State) {
			for state.KeepRunning() {
				state.SkipWithError("nope")
			}
		},
		Threads: 1,
	}
	cfg := Config{MinTime: 1000, Repetitions: 1}

	run := runTrialGrowth(inst, 0, cfg, newFakeClockForState(time.Nanosecond))
	if !run.Error {
		t.Fatal("expected run.Error = true")
	}
	if run.ErrorMessage != "nope" {
		t.Errorf("ErrorMessage = %q, want %q", run.ErrorMessage, "nope")
	}
}

func TestRunOneTrialMultithreadedMergesAllWorkers(t *testing.T) {
	inst := &Instance{
		Name: "MultiThreaded",
		Body: func(state *State) {
			for state.KeepRunning() {
			}
		},
		Threads: 4,
	}

	// SystemClock rather than a shared fakeClockForState: several workers
	// read the clock concurrently here, and the fake's internal counter
	// isn't synchronized for concurrent use.
	_, _, _, result := runOneTrial(inst, 10, SystemClock)
	if result.Iterations != 40 {
		t.Errorf("Iterations = %d, want 40 (4 threads * 10 iterations)", result.Iterations)
	}
}

func TestRunWorkerPanicsIfBodyReturnsEarlyWithoutSkip(t *testing.T) {
	inst := &Instance{
		Name: "Short",
		Body: func(state *State) {
			state.KeepRunning()
			// Returns without exhausting the loop and without SkipWithError.
		},
		Threads: 1,
	}
	tm := NewThreadManager(1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when the benchmark body returns early")
		}
	}()
	runWorker(inst, 5, 0, tm, newFakeClockForState(time.Millisecond))
}

func TestTimeBasisSecondsSelectsConfiguredBasis(t *testing.T) {
	inst := &Instance{}
	cpu, real, manual := 3*time.Second, 5*time.Second, 7*time.Second

	if got := timeBasisSeconds(inst, cpu, real, manual); got != cpu.Seconds() {
		t.Errorf("default basis = %v, want cpu = %v", got, cpu.Seconds())
	}

	inst.UseRealTime = true
	if got := timeBasisSeconds(inst, cpu, real, manual); got != real.Seconds() {
		t.Errorf("real-time basis = %v, want %v", got, real.Seconds())
	}

	inst.UseRealTime = false
	inst.UseManualTime = true
	if got := timeBasisSeconds(inst, cpu, real, manual); got != manual.Seconds() {
		t.Errorf("manual-time basis = %v, want %v", got, manual.Seconds())
	}
}

func TestNextIterationCountGrowsAndRespectsCap(t *testing.T) {
	next := nextIterationCount(1, 0.0001, 0.5, false)
	if next <= 1 {
		t.Errorf("nextIterationCount = %d, want > 1 for a non-significant trial", next)
	}

	capped := nextIterationCount(MaxIterationsCap-1, 0.0001, 0.5, false)
	if capped > MaxIterationsCap {
		t.Errorf("nextIterationCount = %d, exceeds MaxIterationsCap = %d", capped, MaxIterationsCap)
	}
}

func TestComplexityNMultipliesArgs(t *testing.T) {
	inst := &Instance{Args: []int64{8, 4}}
	if got := complexityN(inst); got != 32 {
		t.Errorf("complexityN = %d, want 32", got)
	}
	if got := complexityN(&Instance{}); got != 0 {
		t.Errorf("complexityN with no args = %d, want 0", got)
	}
}

func TestBuildRunComputesPerSecondRates(t *testing.T) {
	inst := &Instance{Name: "Rates", Threads: 1}
	result := Result{Iterations: 10, BytesProcessed: 100, ItemsProcessed: 50}

	run := buildRun(inst, time.Second, 2.0, result, nil)
	if run.BytesPerSecond != 50 {
		t.Errorf("BytesPerSecond = %v, want 50", run.BytesPerSecond)
	}
	if run.ItemsPerSecond != 25 {
		t.Errorf("ItemsPerSecond = %v, want 25", run.ItemsPerSecond)
	}
}
