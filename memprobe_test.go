package gobench_test

import (
	"testing"

	"github.com/gobench-dev/gobench"
)

func TestRuntimeMemoryManagerReportsNonNegativeDeltas(t *testing.T) {
	m := gobench.NewRuntimeMemoryManager()
	m.Start()

	// Force a handful of allocations between Start and Stop.
	buf := make([][]byte, 0, 64)
	for i := 0; i < 64; i++ {
		buf = append(buf, make([]byte, 128))
	}
	_ = buf

	result := m.Stop()
	if result.NumAllocs < 0 {
		t.Errorf("NumAllocs = %d, want >= 0", result.NumAllocs)
	}
	if result.MaxBytesUsed < 0 {
		t.Errorf("MaxBytesUsed = %d, want >= 0", result.MaxBytesUsed)
	}
}

func TestRegisterMemoryManagerWiresIntoOrchestrator(t *testing.T) {
	gobench.RegisterMemoryManager(gobench.NewRuntimeMemoryManager())
	defer gobench.RegisterMemoryManager(nil)

	captured := &recordingReporter{accept: true}
	orch := gobench.NewOrchestrator(captured, nil)
	orch.Clock = testClock{}

	ok := orch.Run([]gobench.Instance{quickInstance("WithMemory")})
	if !ok {
		t.Fatal("Run() = false, want true")
	}
	if len(captured.runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(captured.runs))
	}
	if captured.runs[0].Memory == nil {
		t.Error("Memory = nil, want a MemoryResult once a MemoryManager is registered")
	}
}
