package gobench

import "time"

// ThreadTimer is a per-thread accumulator of CPU time, wall time, and
// optional user-supplied "manual" time. It does no internal locking —
// exactly one worker owns an instance for the lifetime of one trial.
type ThreadTimer struct {
	clock Clock

	running bool

	startCPU  time.Time
	startReal time.Time

	cpuAccum    time.Duration
	realAccum   time.Duration
	manualAccum time.Duration
}

// NewThreadTimer constructs a timer sampling from clock. Passing a nil
// clock uses SystemClock.
func NewThreadTimer(clock Clock) *ThreadTimer {
	if clock == nil {
		clock = SystemClock
	}
	return &ThreadTimer{clock: clock}
}

// Start begins a timing interval. Precondition: the timer is not already
// running.
func (t *ThreadTimer) Start() {
	if t.running {
		panic("gobench: ThreadTimer.Start called while already running")
	}
	t.startCPU = t.clock.CPUTime()
	t.startReal = t.clock.Now()
	t.running = true
}

// Stop ends the current timing interval, folding the elapsed deltas into
// the accumulators. Precondition: the timer is running.
func (t *ThreadTimer) Stop() {
	if !t.running {
		panic("gobench: ThreadTimer.Stop called while not running")
	}
	t.cpuAccum += t.clock.CPUTime().Sub(t.startCPU)
	t.realAccum += t.clock.Now().Sub(t.startReal)
	t.running = false
}

// SetIterationTime adds d to the manual-time accumulator. May be called at
// any time; the benchmark body controls what it means.
func (t *ThreadTimer) SetIterationTime(d time.Duration) {
	t.manualAccum += d
}

// CPUTime returns the accumulated CPU time.
func (t *ThreadTimer) CPUTime() time.Duration { return t.cpuAccum }

// RealTime returns the accumulated wall time.
func (t *ThreadTimer) RealTime() time.Duration { return t.realAccum }

// ManualTime returns the accumulated manual time.
func (t *ThreadTimer) ManualTime() time.Duration { return t.manualAccum }

// Running reports whether the timer is currently between Start and Stop.
func (t *ThreadTimer) Running() bool { return t.running }
