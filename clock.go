package gobench

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// WallClock supplies monotonic wall-time readings.
type WallClock interface {
	Now() time.Time
}

// CPUClock supplies the calling OS thread's consumed CPU time. The core
// treats both clocks as injected collaborators (spec.md §1); this file
// provides the concrete default used outside of tests.
type CPUClock interface {
	CPUTime() time.Time
}

// Clock bundles both abstract timer primitives the core consumes.
type Clock interface {
	WallClock
	CPUClock
}

// systemClock is the default Clock. Each worker goroutine that uses it
// must call runtime.LockOSThread before timing begins, since per-thread
// CPU accounting (RUSAGE_THREAD) is only meaningful for a goroutine pinned
// to one OS thread for its lifetime; the iteration controller's workers do
// exactly this (see controller.go). This generalizes the process-wide
// syscall.Rusage/RUSAGE_SELF sampling used for wall-clock benchmarking
// tools in the retrieval pack down to a single OS thread, using the
// portable golang.org/x/sys/unix wrapper instead of raw syscall.
type systemClock struct{}

// SystemClock is the default Clock implementation, backed by
// CLOCK_THREAD_CPUTIME_ID-equivalent per-thread accounting via
// getrusage(RUSAGE_THREAD).
var SystemClock Clock = systemClock{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) CPUTime() time.Time {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_THREAD, &ru); err != nil {
		// Fall back to wall time rather than panicking: a benchmark
		// should never fail because CPU accounting is unavailable on
		// the platform (e.g. under some sandboxes).
		return time.Now()
	}
	sec := ru.Utime.Sec + ru.Stime.Sec
	usec := int64(ru.Utime.Usec) + int64(ru.Stime.Usec)
	return time.Unix(sec, usec*1000)
}

// lockWorkerThread pins the calling goroutine to its OS thread, required
// before using SystemClock's CPUTime. Callers on short-lived goroutines
// (auxiliary trial workers) must pair this with runtime.UnlockOSThread()
// before returning; worker 0 runs on a goroutine reused across every
// trial and repetition and is left pinned for the process lifetime.
func lockWorkerThread() {
	runtime.LockOSThread()
}
