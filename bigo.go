package gobench

import (
	"math"

	gostats "github.com/GaryBoone/GoStats/stats"
)

// complexityCandidate pairs a named curve with its shape function f(n).
type complexityCandidate struct {
	kind Complexity
	f    func(n float64) float64
}

var standardCurves = []complexityCandidate{
	{O1, func(float64) float64 { return 1 }},
	{OLogN, func(n float64) float64 { return math.Log2(n) }},
	{ON, func(n float64) float64 { return n }},
	{ONLogN, func(n float64) float64 { return n * math.Log2(n) }},
	{ON2, func(n float64) float64 { return n * n }},
	{ON3, func(n float64) float64 { return n * n * n }},
}

// ComputeBigO fits a complexity curve across a family of Run records that
// share a base name and share Complexity != ComplexityNone, closed by the
// Instance whose LastBenchmarkInstance flag was set (spec.md §4.5, §1 "the
// core invokes ... compute_big_o, defined externally"). It returns two
// synthetic rows per family — the fitted coefficient ("big_o") and the
// fit's RMS residual ("RMS") — mirroring the two-row report the original
// C++ implementation produces for a complexity family.
func ComputeBigO(runs []Run) []Run {
	if len(runs) < 2 {
		return nil
	}

	ns := make([]float64, len(runs))
	seconds := make([]float64, len(runs))
	for i, r := range runs {
		ns[i] = float64(r.ComplexityN)
		seconds[i] = r.RealTime.Seconds()
	}

	candidate, coef := fitComplexity(runs[0], ns, seconds)
	rms := rmsResidual(ns, seconds, candidate.f, coef)

	base := runs[0]
	bigO := Run{
		ID:            newRunID(),
		Name:          base.Name,
		Threads:       base.Threads,
		Complexity:    candidate.kind,
		ComplexityN:   base.ComplexityN,
		TimeUnit:      base.TimeUnit,
		RealTime:      secondsToDuration(coef),
		CPUTime:       secondsToDuration(coef),
		Kind:          RunComplexity,
		AggregateName: "big_o",
	}
	rmsRun := Run{
		ID:            newRunID(),
		Name:          base.Name,
		Threads:       base.Threads,
		Complexity:    candidate.kind,
		ComplexityN:   base.ComplexityN,
		TimeUnit:      base.TimeUnit,
		RealTime:      secondsToDuration(rms),
		CPUTime:       secondsToDuration(rms),
		Kind:          RunComplexity,
		AggregateName: "RMS",
	}
	return []Run{bigO, rmsRun}
}

// fitComplexity resolves which curve to report (the Instance's declared
// curve, the supplied lambda, or — for OAuto — whichever standard curve
// GoStats' regression scores best by R²) and the minimal
// least-squares coefficient for it, forced through the origin since every
// asymptotic complexity curve must pass through (0, 0).
func fitComplexity(base Run, ns, seconds []float64) (complexityCandidate, float64) {
	switch base.Complexity {
	case OLambda:
		if base.ComplexityLambda == nil {
			panic("gobench: Complexity == OLambda requires a non-nil ComplexityLambda")
		}
		lambda := base.ComplexityLambda
		cand := complexityCandidate{OLambda, func(n float64) float64 { return lambda(int64(n)) }}
		return cand, minimalLeastSquares(ns, seconds, cand.f)
	case OAuto:
		return bestFitCurve(ns, seconds)
	default:
		for _, c := range standardCurves {
			if c.kind == base.Complexity {
				return c, minimalLeastSquares(ns, seconds, c.f)
			}
		}
		// Unreachable for a well-formed Instance; fall back to O(N).
		cand := complexityCandidate{ON, func(n float64) float64 { return n }}
		return cand, minimalLeastSquares(ns, seconds, cand.f)
	}
}

// bestFitCurve scores every standard curve by the R² of a simple linear
// regression of seconds against f(n), via GaryBoone/GoStats'
// LinearRegression, and returns the best-scoring curve along with its
// origin-forced coefficient.
func bestFitCurve(ns, seconds []float64) (complexityCandidate, float64) {
	best := standardCurves[0]
	bestR2 := -math.MaxFloat64
	for _, c := range standardCurves {
		fx := make([]float64, len(ns))
		for i, n := range ns {
			fx[i] = c.f(n)
		}
		_, _, r2, _, _, _ := gostats.LinearRegression(fx, seconds)
		if r2 > bestR2 {
			bestR2 = r2
			best = c
		}
	}
	return best, minimalLeastSquares(ns, seconds, best.f)
}

// minimalLeastSquares solves for the scalar coefficient c minimizing
// sum((seconds_i - c*f(n_i))^2), i.e. ordinary least squares with the fit
// forced through the origin.
func minimalLeastSquares(ns, seconds []float64, f func(float64) float64) float64 {
	var num, den float64
	for i, n := range ns {
		fn := f(n)
		num += fn * seconds[i]
		den += fn * fn
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func rmsResidual(ns, seconds []float64, f func(float64) float64, coef float64) float64 {
	var sumSq float64
	for i, n := range ns {
		resid := seconds[i] - coef*f(n)
		sumSq += resid * resid
	}
	mean := sumSq / float64(len(ns))
	if mean <= 0 {
		return 0
	}
	return math.Sqrt(mean)
}
