package gobench

import "time"

// State is the object handed to a benchmark body: one instance per worker
// thread per trial. At most one goroutine owns a State.
//
// errorOccurred is kept as the first field so the hot loop's KeepRunning
// check and the error flag sit in the same region of the struct (spec.md
// §4.3's cache-line hint; Go gives no hard guarantee of this, but keeping
// the hot fields first is the idiomatic approximation).
type State struct {
	errorOccurred bool

	started  bool
	finished bool

	totalIterations uint64
	maxIterations   uint64

	threadIndex int
	threads     int
	args        []int64

	timer   *ThreadTimer
	manager *ThreadManager

	bytesProcessed uint64
	itemsProcessed uint64
	counters       map[string]Counter
	label          string
}

// newState constructs the run state for one worker of one trial.
func newState(maxIterations uint64, args []int64, threadIndex, threads int, timer *ThreadTimer, manager *ThreadManager) *State {
	return &State{
		maxIterations: maxIterations,
		args:          args,
		threadIndex:   threadIndex,
		threads:       threads,
		timer:         timer,
		manager:       manager,
		counters:      make(map[string]Counter),
	}
}

// KeepRunning drives the measured loop. The benchmark body must call it in
// a for-loop condition and do no other loop bookkeeping:
//
//	for state.KeepRunning() { ... }
//
// The first call starts timing (after passing the trial's start barrier);
// every call that returns true consumes one iteration; the first call made
// once maxIterations are consumed stops timing, passes the stop barrier,
// and returns false.
// The body must not return from its loop early — the controller checks
// Iterations() >= maxIterations after the body returns and treats a
// shortfall as a fatal usage error, except when SkipWithError has been
// called (spec.md's Open Questions: the error path deliberately reaches
// the same finishKeepRunning exit as a completed run).
func (s *State) KeepRunning() bool {
	if !s.started {
		s.startKeepRunning()
	}
	if s.totalIterations > 0 {
		s.totalIterations--
		return true
	}
	if !s.finished {
		s.finishKeepRunning()
	}
	return false
}

func (s *State) startKeepRunning() {
	if s.errorOccurred {
		s.totalIterations = 0
	} else {
		s.totalIterations = s.maxIterations
	}
	s.started = true
	s.manager.StartStopBarrier()
	s.timer.Start()
}

func (s *State) finishKeepRunning() {
	if !s.errorOccurred {
		s.timer.Stop()
	}
	s.totalIterations = 0
	s.finished = true
	s.manager.StartStopBarrier()
}

// PauseTiming stops the timer so the benchmark body can run setup code
// that must not count toward the measured time. Precondition: started,
// not finished, no error has occurred.
func (s *State) PauseTiming() {
	if !s.started || s.finished || s.errorOccurred {
		panic("gobench: PauseTiming called outside an active KeepRunning loop")
	}
	s.timer.Stop()
}

// ResumeTiming restarts the timer after PauseTiming. Same precondition.
func (s *State) ResumeTiming() {
	if !s.started || s.finished || s.errorOccurred {
		panic("gobench: ResumeTiming called outside an active KeepRunning loop")
	}
	s.timer.Start()
}

// SkipWithError marks the trial as failed with message. Remaining
// iterations are truncated to zero so the next KeepRunning call returns
// false; the body is expected to exit its loop promptly afterward. The
// first worker across all threads in the trial to call SkipWithError wins
// the shared error message (spec.md §7, §9).
func (s *State) SkipWithError(message string) {
	s.errorOccurred = true
	s.manager.Lock()
	s.manager.Results().setErrorIfUnset(message)
	s.manager.Unlock()
	s.totalIterations = 0
	if s.timer.Running() {
		s.timer.Stop()
	}
}

// SetIterationTime forwards to the timer's manual accumulator.
func (s *State) SetIterationTime(d time.Duration) {
	s.timer.SetIterationTime(d)
}

// SetLabel sets the trial's report label. Last writer wins across threads
// (applied when merged under the manager's mutex at worker exit).
func (s *State) SetLabel(label string) {
	s.label = label
}

// SetBytesProcessed records the number of bytes this thread's share of
// the loop processed, accumulated locally until worker exit.
func (s *State) SetBytesProcessed(n uint64) {
	s.bytesProcessed = n
}

// SetItemsProcessed records the number of items this thread's share of
// the loop processed, accumulated locally until worker exit.
func (s *State) SetItemsProcessed(n uint64) {
	s.itemsProcessed = n
}

// SetCounter records a named, reduced counter value, accumulated locally
// until worker exit.
func (s *State) SetCounter(name string, value float64, reducer Reducer) {
	s.counters[name] = Counter{Value: value, Reducer: reducer}
}

// Range returns the i'th captured Instance argument.
func (s *State) Range(i int) int64 {
	if i < 0 || i >= len(s.args) {
		return 0
	}
	return s.args[i]
}

// Iterations reports how many iterations have been consumed so far.
func (s *State) Iterations() uint64 {
	return s.maxIterations - s.totalIterations
}

// ThreadIndex reports this worker's index in [0, threads).
func (s *State) ThreadIndex() int { return s.threadIndex }

// Threads reports the trial's configured thread count.
func (s *State) Threads() int { return s.threads }

// MaxIterations reports the iteration count this trial was asked to run.
func (s *State) MaxIterations() uint64 { return s.maxIterations }
