package gobench

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ComputeStatistics reduces a repetition's non-aggregate Run records into
// one aggregate Run per StatisticDescriptor. It is invoked by
// RunRepetitions as a pure function of its inputs (spec.md §1, "the core
// invokes two pure functions ... defined externally"); this is the
// concrete default, built on gonum.org/v1/gonum/stat.
func ComputeStatistics(runs []Run, descriptors []StatisticDescriptor) []Run {
	if len(runs) == 0 || len(descriptors) == 0 {
		return nil
	}

	realSeconds := make([]float64, len(runs))
	cpuSeconds := make([]float64, len(runs))
	bytesPerSec := make([]float64, len(runs))
	itemsPerSec := make([]float64, len(runs))
	var iterSum uint64
	for i, r := range runs {
		realSeconds[i] = r.RealTime.Seconds()
		cpuSeconds[i] = r.CPUTime.Seconds()
		bytesPerSec[i] = r.BytesPerSecond
		itemsPerSec[i] = r.ItemsPerSecond
		iterSum += r.Iterations
	}

	base := runs[0]
	out := make([]Run, 0, len(descriptors))
	for _, d := range descriptors {
		compute := d.Compute
		if compute == nil {
			compute = func(values []float64) float64 { return stat.Mean(values, nil) }
		}
		out = append(out, Run{
			ID:             newRunID(),
			Name:           base.Name,
			Threads:        base.Threads,
			Iterations:     iterSum / uint64(len(runs)),
			RealTime:       secondsToDuration(compute(realSeconds)),
			CPUTime:        secondsToDuration(compute(cpuSeconds)),
			TimeUnit:       base.TimeUnit,
			BytesPerSecond: compute(bytesPerSec),
			ItemsPerSecond: compute(itemsPerSec),
			Complexity:     base.Complexity,
			ComplexityN:    base.ComplexityN,
			Statistics:     descriptors,
			Kind:           RunAggregate,
			AggregateName:  d.Name,
		})
	}
	return out
}

// Mean, Median, and StdDev are ready-made StatisticDescriptor reducers
// built on gonum.org/v1/gonum/stat, for callers that don't want to supply
// their own Compute function.
var (
	Mean = StatisticDescriptor{Name: "mean", Compute: func(v []float64) float64 {
		return stat.Mean(v, nil)
	}}
	Median = StatisticDescriptor{Name: "median", Compute: func(v []float64) float64 {
		sorted := append([]float64(nil), v...)
		sort.Float64s(sorted)
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}}
	StdDev = StatisticDescriptor{Name: "stddev", Compute: func(v []float64) float64 {
		_, std := stat.MeanStdDev(v, nil)
		return std
	}}
	CV = StatisticDescriptor{Name: "cv", Compute: func(v []float64) float64 {
		mean, std := stat.MeanStdDev(v, nil)
		if mean == 0 {
			return 0
		}
		return std / mean
	}}
)

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
