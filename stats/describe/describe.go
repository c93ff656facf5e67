// Package describe computes per-column descriptive statistics in the shape
// of a dataframe describe() report, extended with the IQR and Tukey fence
// used by the outlier package.
package describe

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-outlier/stats/outlier"
)

// Summary holds descriptive statistics of one numeric column.
type Summary struct {
	Count    int
	Mean     float64
	Std      float64 // sample standard deviation (n-1), 0 for a single value
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	IQR      float64
	Skewness float64
	RMS      float64
	Fence    outlier.Bounds
}

// Calculate summarizes values. It rejects the same inputs as outlier.Cap.
func Calculate(values []float64, opts ...outlier.Option) (Summary, error) {
	if err := outlier.Validate(values); err != nil {
		return Summary{}, err
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	var q [3]float64
	for i, p := range []float64{0.25, 0.5, 0.75} {
		v, err := outlier.QuantileSorted(sorted, p)
		if err != nil {
			return Summary{}, err
		}
		q[i] = v
	}
	q1, median, q3 := q[0], q[1], q[2]
	fence, err := outlier.FenceOf(q1, q3, opts...)
	if err != nil {
		return Summary{}, err
	}

	n := len(values)
	s := Summary{
		Count:  n,
		Mean:   stat.Mean(values, nil),
		Min:    sorted[0],
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    sorted[n-1],
		IQR:    q3 - q1,
		RMS:    RMS(values),
		Fence:  fence,
	}
	if n > 1 {
		s.Std = stat.StdDev(values, nil)
		if s.Std > 0 {
			s.Skewness = stat.Skew(values, nil)
		}
	}
	return s, nil
}

// RMS returns the root-mean-square of values, 0 for an empty slice.
func RMS(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sq := make([]float64, len(values))
	vecmath.MulBlock(sq, values, values)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return math.Sqrt(sum / float64(len(values)))
}
