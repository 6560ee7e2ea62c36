package gobench

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// runTrialGrowth drives one repetition of one Instance through the
// "trial -> measure -> decide iters -> repeat" loop (spec.md §4.4) until
// either the measured time reaches the minimum time or another
// should-report condition fires, then produces one Run record.
func runTrialGrowth(inst *Instance, repetitionNum int, cfg Config, clock Clock) Run {
	iters := inst.Iterations
	if iters == 0 {
		iters = 1
	}

	minTime := cfg.MinTime
	if inst.MinTime != 0 {
		minTime = inst.MinTime
	}

	for {
		cpuTime, realTime, manualTime, result := runOneTrial(inst, iters, clock)

		// Normalize: CPU time is a sum-of-threads measure of total work;
		// real/manual time are per-thread wall times, so only their mean
		// across threads makes sense (spec.md §4.4 step 4).
		threads := int64(inst.Threads)
		if threads < 1 {
			threads = 1
		}
		realTime = time.Duration(int64(realTime) / threads)
		manualTime = time.Duration(int64(manualTime) / threads)

		seconds := timeBasisSeconds(inst, cpuTime, realTime, manualTime)

		significant := seconds/minTime > significanceThreshold
		shouldReport := repetitionNum > 0 ||
			inst.Iterations != 0 ||
			result.HasError ||
			iters >= MaxIterationsCap ||
			seconds >= minTime ||
			(realTime.Seconds() >= cpuRunawayFactor*minTime && !inst.UseManualTime)

		if shouldReport {
			var mem *MemoryResult
			if !result.HasError && globalMemoryManager != nil {
				probeIters := iters
				if probeIters > 16 {
					probeIters = 16
				}
				globalMemoryManager.Start()
				runMemoryProbe(inst, probeIters, clock)
				r := globalMemoryManager.Stop()
				mem = &r
			}
			return buildRun(inst, cpuTime, seconds, result, mem)
		}

		iters = nextIterationCount(iters, seconds, minTime, significant)
	}
}

// runOneTrial spawns inst.Threads workers (the caller's goroutine acts as
// worker 0), runs the benchmark body maxIterations times on each, and
// returns the merged, still-unnormalized timing totals and Result.
func runOneTrial(inst *Instance, maxIterations uint64, clock Clock) (cpuTime, realTime, manualTime time.Duration, result Result) {
	tm := NewThreadManager(inst.Threads)

	var eg errgroup.Group
	for idx := 1; idx < inst.Threads; idx++ {
		idx := idx
		eg.Go(func() error {
			runWorker(inst, maxIterations, idx, tm, clock)
			return nil
		})
	}

	runWorker(inst, maxIterations, 0, tm, clock)

	tm.WaitForAllThreads()
	_ = eg.Wait() // workers never return an error; join for completeness

	tm.Lock()
	result = *tm.Results()
	tm.Unlock()

	return result.CPUTime, result.RealTime, result.ManualTime, result
}

// runWorker executes the benchmark body for one thread of one trial and
// merges its contribution into the shared Result. Worker 0 runs inline on
// the caller's goroutine and is reused across every trial of every
// repetition, so it stays pinned to its OS thread for the process
// lifetime; auxiliary workers are spawned fresh per trial and release
// their OS thread when they return.
func runWorker(inst *Instance, maxIterations uint64, threadIndex int, tm *ThreadManager, clock Clock) {
	lockWorkerThread()
	if threadIndex != 0 {
		defer runtime.UnlockOSThread()
	}

	timer := NewThreadTimer(clock)
	state := newState(maxIterations, inst.Args, threadIndex, inst.Threads, timer, tm)

	inst.Body(state)

	if state.Iterations() < state.MaxIterations() {
		panic(fmt.Sprintf(
			"gobench: %s: benchmark body returned after %d of %d iterations; the body must drive KeepRunning() to completion",
			inst.DisplayName(), state.Iterations(), state.MaxIterations(),
		))
	}

	tm.Lock()
	r := tm.Results()
	r.Iterations += state.Iterations()
	r.CPUTime += timer.CPUTime()
	r.RealTime += timer.RealTime()
	r.ManualTime += timer.ManualTime()
	r.BytesProcessed += state.bytesProcessed
	r.ItemsProcessed += state.itemsProcessed
	r.mergeCounters(state.counters)
	if state.label != "" {
		r.ReportLabel = state.label
	}
	tm.Unlock()

	tm.NotifyThreadComplete()
}

// runMemoryProbe runs the benchmark body single-threaded while the
// process-wide memory probe is active (spec.md §4.4 step 8).
func runMemoryProbe(inst *Instance, iterations uint64, clock Clock) {
	tm := NewThreadManager(1)
	runWorker(inst, iterations, 0, tm, clock)
}

func timeBasisSeconds(inst *Instance, cpuTime, realTime, manualTime time.Duration) float64 {
	switch {
	case inst.UseManualTime:
		return manualTime.Seconds()
	case inst.UseRealTime:
		return realTime.Seconds()
	default:
		return cpuTime.Seconds()
	}
}

// nextIterationCount computes the next trial's iteration count following
// the 1.4x-overshoot, capped-multiplier growth rule (spec.md §4.4 step
// 10). The constants are baked-in and must be preserved exactly for
// behavioral parity (spec.md §9).
func nextIterationCount(iters uint64, seconds, minTime float64, significant bool) uint64 {
	denom := math.Max(seconds, 1e-9)
	multiplier := minTime * overshootFactor / denom

	if !significant {
		if multiplier > nonSignificantMultiplierCap {
			multiplier = nonSignificantMultiplierCap
		}
	}
	if multiplier <= 1.0 {
		multiplier = 2.0
	}

	next := multiplier * float64(iters)
	if next < float64(iters)+1 {
		next = float64(iters) + 1
	}
	if next > float64(MaxIterationsCap) {
		next = float64(MaxIterationsCap)
	}
	return uint64(math.Round(next))
}

func buildRun(inst *Instance, cpuTime time.Duration, basisSeconds float64, result Result, mem *MemoryResult) Run {
	var counters map[string]Counter
	if !result.HasError {
		counters = finalizeCounters(result.Counters, inst.Threads, result.Iterations, basisSeconds)
	}
	run := Run{
		ID:               newRunID(),
		Name:             inst.DisplayName(),
		Threads:          inst.Threads,
		Iterations:       result.Iterations,
		RealTime:         time.Duration(basisSeconds * float64(time.Second)),
		CPUTime:          cpuTime,
		TimeUnit:         inst.TimeUnit,
		Complexity:       inst.Complexity,
		ComplexityN:      complexityN(inst),
		ComplexityLambda: inst.ComplexityLambda,
		Counters:         counters,
		Memory:           mem,
		Error:            result.HasError,
		ErrorMessage:     result.ErrorMessage,
		ReportLabel:      result.ReportLabel,
		Statistics:       inst.Statistics,
		Kind:             RunNormal,
	}
	if basisSeconds > 0 {
		run.BytesPerSecond = float64(result.BytesProcessed) / basisSeconds
		run.ItemsPerSecond = float64(result.ItemsProcessed) / basisSeconds
	}
	return run
}

// complexityN resolves the "n" a complexity fit should associate with this
// Instance: the product of its argument vector when non-empty (the
// conventional single-argument case being just that argument), else the
// iteration count isn't meaningful here — a zero-argument Instance simply
// doesn't participate meaningfully in complexity fitting.
func complexityN(inst *Instance) int64 {
	if len(inst.Args) == 0 {
		return 0
	}
	n := int64(1)
	for _, a := range inst.Args {
		n *= a
	}
	return n
}
