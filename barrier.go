package gobench

import "sync"

// cyclicBarrier is a reusable N-party rendezvous. It is used twice per
// trial by ThreadManager: once before the timed loop begins (so no
// worker starts timing before every peer has initialized) and once after
// every worker has finished (so the controller never reads Result before
// every merge has happened). No third-party library in the retrieval pack
// implements a cyclic barrier (golang.org/x/sync offers errgroup and a
// weighted semaphore, neither of which is a rendezvous primitive), so this
// is the one synchronization primitive in the core built directly on the
// standard library's sync.Cond.
type cyclicBarrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	phase   int
}

func newCyclicBarrier(parties int) *cyclicBarrier {
	b := &cyclicBarrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Await blocks until parties callers have called Await for the current
// phase, then releases all of them and advances to the next phase.
func (b *cyclicBarrier) Await() {
	b.mu.Lock()
	defer b.mu.Unlock()

	phase := b.phase
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.phase++
		b.cond.Broadcast()
		return
	}
	for b.phase == phase {
		b.cond.Wait()
	}
}
