package gobench

import "runtime"

// RuntimeMemoryManager is the default MemoryManager, sampling Go's own
// allocator statistics via runtime.MemStats. It generalizes the
// before/after runtime.MemStats snapshotting used for benchmarking tools
// in the retrieval pack (RtlZeroMemory-Rezi/packages/bench/bubbletea-bench,
// takeMemory/peakMemory) from a one-off CLI snapshot into the Start/Stop
// collaborator shape spec.md §6 names.
type RuntimeMemoryManager struct {
	before runtime.MemStats
}

// NewRuntimeMemoryManager constructs a MemoryManager backed by
// runtime.ReadMemStats.
func NewRuntimeMemoryManager() *RuntimeMemoryManager {
	return &RuntimeMemoryManager{}
}

// Start snapshots the current allocator counters.
func (m *RuntimeMemoryManager) Start() {
	runtime.ReadMemStats(&m.before)
}

// Stop snapshots the allocator counters again. NumAllocs is the number of
// allocations made since Start; MaxBytesUsed is the live heap size
// (HeapAlloc) at the moment of Stop, not a peak tracked over the interval.
func (m *RuntimeMemoryManager) Stop() MemoryResult {
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	numAllocs := int64(after.Mallocs) - int64(m.before.Mallocs)
	if numAllocs < 0 {
		numAllocs = 0
	}

	maxBytes := int64(after.HeapAlloc)
	if maxBytes < 0 {
		maxBytes = 0
	}

	return MemoryResult{
		NumAllocs:    numAllocs,
		MaxBytesUsed: maxBytes,
	}
}
