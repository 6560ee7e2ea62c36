package reporters_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gobench-dev/gobench"
	"github.com/gobench-dev/gobench/reporters"
)

func TestMetricsReportRunsSetsGauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := reporters.NewMetrics(registry)

	m.ReportRuns([]gobench.Run{
		{Name: "Fib/8", RealTime: 10 * time.Millisecond, CPUTime: 5 * time.Millisecond, Iterations: 1000, BytesPerSecond: 2048},
	})

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}

	found := map[string]bool{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "name" && l.GetValue() == "Fib/8" {
					found[f.GetName()] = true
				}
			}
		}
	}
	for _, name := range []string{"gobench_real_time_seconds", "gobench_cpu_time_seconds", "gobench_iterations_total", "gobench_bytes_per_second"} {
		if !found[name] {
			t.Errorf("expected metric family %q to carry a sample for Fib/8", name)
		}
	}
}

func TestMetricsReportRunsIncrementsErrorsAndSkipsTimingGauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := reporters.NewMetrics(registry)

	m.ReportRuns([]gobench.Run{{Name: "Broken", Error: true, ErrorMessage: "boom"}})

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}
	for _, f := range families {
		if f.GetName() != "gobench_errors_total" && len(f.GetMetric()) > 0 {
			t.Errorf("metric family %q carries a sample for an errored Run, want none", f.GetName())
		}
	}
	for _, f := range families {
		if f.GetName() != "gobench_errors_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			if metric.GetCounter().GetValue() != 1 {
				t.Errorf("gobench_errors_total = %v, want 1", metric.GetCounter().GetValue())
			}
			return
		}
	}
	t.Fatal("expected a sample in the gobench_errors_total family")
}

func TestMetricsReportContextAlwaysSucceeds(t *testing.T) {
	m := reporters.NewMetrics(prometheus.NewRegistry())
	if !m.ReportContext(gobench.ReportContext{}) {
		t.Error("ReportContext() = false, want true")
	}
}
