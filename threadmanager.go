package gobench

import "sync"

// ThreadManager is shared across the N workers of one trial. It owns the
// mutex-protected Result, the start/stop barrier reused at the beginning
// and end of the trial, and a completion latch the controller waits on
// after every worker has merged into Result (spec.md §4.2).
type ThreadManager struct {
	threads int

	mu     sync.Mutex
	result *Result

	barrier *cyclicBarrier

	completionMu sync.Mutex
	remaining    int
	completed    chan struct{}
}

// NewThreadManager constructs a fresh manager for a trial with the given
// number of worker threads. A ThreadManager is used for exactly one trial
// and then discarded.
func NewThreadManager(threads int) *ThreadManager {
	if threads < 1 {
		panic("gobench: ThreadManager requires threads >= 1")
	}
	return &ThreadManager{
		threads:   threads,
		result:    newResult(),
		barrier:   newCyclicBarrier(threads),
		remaining: threads,
		completed: make(chan struct{}),
	}
}

// StartStopBarrier blocks until all threads() parties have called it. It
// is called once by every worker before the timed loop starts, and once
// more after every worker's timed loop has finished.
func (tm *ThreadManager) StartStopBarrier() {
	tm.barrier.Await()
}

// Lock acquires the mutex guarding Results. Callers of Results must hold
// this lock for the duration of their access.
func (tm *ThreadManager) Lock() { tm.mu.Lock() }

// Unlock releases the mutex acquired by Lock.
func (tm *ThreadManager) Unlock() { tm.mu.Unlock() }

// Results returns the shared Result. Callers must hold the manager's
// mutex (see Lock/Unlock).
func (tm *ThreadManager) Results() *Result { return tm.result }

// NotifyThreadComplete decrements the outstanding-worker counter; the
// caller that brings it to zero closes the completion latch, releasing
// any goroutine blocked in WaitForAllThreads.
func (tm *ThreadManager) NotifyThreadComplete() {
	tm.completionMu.Lock()
	defer tm.completionMu.Unlock()
	tm.remaining--
	if tm.remaining == 0 {
		close(tm.completed)
	} else if tm.remaining < 0 {
		panic("gobench: NotifyThreadComplete called more times than threads()")
	}
}

// WaitForAllThreads blocks until every worker has called
// NotifyThreadComplete.
func (tm *ThreadManager) WaitForAllThreads() {
	<-tm.completed
}
