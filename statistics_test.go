package gobench_test

import (
	"testing"
	"time"

	"github.com/gobench-dev/gobench"
)

func makeRuns(seconds ...float64) []gobench.Run {
	runs := make([]gobench.Run, len(seconds))
	for i, s := range seconds {
		runs[i] = gobench.Run{
			Name:       "Bench",
			Threads:    1,
			Iterations: 100,
			RealTime:   time.Duration(s * float64(time.Second)),
			CPUTime:    time.Duration(s * float64(time.Second)),
		}
	}
	return runs
}

func TestComputeStatisticsMean(t *testing.T) {
	runs := makeRuns(1.0, 2.0, 3.0)
	out := gobench.ComputeStatistics(runs, []gobench.StatisticDescriptor{gobench.Mean})
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if got, want := out[0].RealTime, 2*time.Second; got != want {
		t.Errorf("mean RealTime = %v, want %v", got, want)
	}
	if out[0].Kind != gobench.RunAggregate {
		t.Errorf("Kind = %v, want RunAggregate", out[0].Kind)
	}
	if out[0].AggregateName != "mean" {
		t.Errorf("AggregateName = %q, want %q", out[0].AggregateName, "mean")
	}
}

func TestComputeStatisticsMedian(t *testing.T) {
	runs := makeRuns(1.0, 100.0, 2.0)
	out := gobench.ComputeStatistics(runs, []gobench.StatisticDescriptor{gobench.Median})
	if got, want := out[0].RealTime, 2*time.Second; got != want {
		t.Errorf("median RealTime = %v, want %v", got, want)
	}
}

func TestComputeStatisticsStdDevAndCV(t *testing.T) {
	runs := makeRuns(2.0, 2.0, 2.0)
	out := gobench.ComputeStatistics(runs, []gobench.StatisticDescriptor{gobench.StdDev, gobench.CV})
	if out[0].RealTime != 0 {
		t.Errorf("stddev of identical values = %v, want 0", out[0].RealTime)
	}
	if out[1].RealTime != 0 {
		t.Errorf("cv of identical values = %v, want 0", out[1].RealTime)
	}
}

func TestComputeStatisticsEmptyInputs(t *testing.T) {
	if out := gobench.ComputeStatistics(nil, []gobench.StatisticDescriptor{gobench.Mean}); out != nil {
		t.Errorf("ComputeStatistics(nil, ...) = %v, want nil", out)
	}
	if out := gobench.ComputeStatistics(makeRuns(1.0), nil); out != nil {
		t.Errorf("ComputeStatistics(runs, nil) = %v, want nil", out)
	}
}

func TestComputeStatisticsCustomDescriptor(t *testing.T) {
	runs := makeRuns(1.0, 2.0, 3.0)
	max := gobench.StatisticDescriptor{
		Name: "max",
		Compute: func(values []float64) float64 {
			m := values[0]
			for _, v := range values[1:] {
				if v > m {
					m = v
				}
			}
			return m
		},
	}
	out := gobench.ComputeStatistics(runs, []gobench.StatisticDescriptor{max})
	if got, want := out[0].RealTime, 3*time.Second; got != want {
		t.Errorf("max RealTime = %v, want %v", got, want)
	}
}
