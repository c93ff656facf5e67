package outlier

import (
	"math"
	"slices"
)

// Quantile returns the p-quantile of values (0 <= p <= 1) by linear
// interpolation between the closest ranks: with sorted x and h = p*(n-1),
// the result is x[floor(h)] + (h-floor(h))*(x[floor(h)+1]-x[floor(h)]),
// evaluated so that it stays within its two neighbours for any finite input.
// values is not modified.
func Quantile(values []float64, p float64) (float64, error) {
	if err := Validate(values); err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, &InvalidInputError{Reason: ReasonProbability, Index: -1, Value: p}
	}
	return quantileSorted(sortedCopy(values), p), nil
}

// QuantileSorted is Quantile for input already in ascending order. It skips
// the copy and sort; the order is not checked.
func QuantileSorted(sorted []float64, p float64) (float64, error) {
	if err := Validate(sorted); err != nil {
		return 0, err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, &InvalidInputError{Reason: ReasonProbability, Index: -1, Value: p}
	}
	return quantileSorted(sorted, p), nil
}

// Quartiles returns the 25th and 75th percentiles of values.
func Quartiles(values []float64) (q1, q3 float64, err error) {
	if err := Validate(values); err != nil {
		return 0, 0, err
	}
	sorted := sortedCopy(values)
	return quantileSorted(sorted, 0.25), quantileSorted(sorted, 0.75), nil
}

func sortedCopy(values []float64) []float64 {
	cp := slices.Clone(values)
	slices.Sort(cp)
	return cp
}

// quantileSorted expects a non-empty ascending slice.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	a, b := sorted[lo], sorted[lo+1]
	frac := h - float64(lo)
	if frac == 0 || a == b {
		return a
	}
	// Weighted form: b-a overflows when the neighbours straddle ±MaxFloat64/2.
	q := a*(1-frac) + b*frac
	return math.Min(math.Max(q, a), b)
}
