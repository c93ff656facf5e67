package describe

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-outlier/internal/testutil"
	"github.com/cwbudde/algo-outlier/stats/outlier"
)

const tolerance = 1e-10

func TestCalculate_Fixture(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}
	s, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	mean := 136.0 / 9
	var ss float64
	for _, v := range in {
		ss += (v - mean) * (v - mean)
	}
	std := math.Sqrt(ss / 8)

	if s.Count != 9 {
		t.Errorf("Count: got %d, want 9", s.Count)
	}
	testutil.RequireSliceNearlyEqual(t,
		[]float64{s.Mean, s.Std, s.RMS},
		[]float64{mean, std, math.Sqrt(10204.0 / 9)},
		tolerance)
	if s.Min != 1 || s.Max != 100 {
		t.Errorf("Min/Max: got %g/%g, want 1/100", s.Min, s.Max)
	}
	if s.Q1 != 3 || s.Median != 5 || s.Q3 != 7 || s.IQR != 4 {
		t.Errorf("quartiles: got %g/%g/%g iqr %g, want 3/5/7 iqr 4", s.Q1, s.Median, s.Q3, s.IQR)
	}
	if s.Fence != (outlier.Bounds{Lower: -3, Upper: 13}) {
		t.Errorf("Fence: got %+v, want {-3 13}", s.Fence)
	}
	if s.Skewness <= 0 {
		t.Errorf("Skewness: got %g, want > 0 for a right tail", s.Skewness)
	}
}

func TestCalculate_SingleValue(t *testing.T) {
	s, err := Calculate([]float64{42})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if s.Std != 0 || s.Skewness != 0 || s.IQR != 0 {
		t.Errorf("got std=%g skew=%g iqr=%g, want zeros", s.Std, s.Skewness, s.IQR)
	}
	if s.Mean != 42 || s.Median != 42 {
		t.Errorf("Mean/Median: got %g/%g, want 42", s.Mean, s.Median)
	}
}

func TestCalculate_Symmetric(t *testing.T) {
	s, err := Calculate([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, []float64{s.Std, s.Skewness}, []float64{1, 0}, tolerance)
}

func TestCalculate_Uniform(t *testing.T) {
	s, err := Calculate([]float64{5, 5, 5, 5})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if s.Std != 0 || s.Skewness != 0 {
		t.Errorf("got std=%g skew=%g, want zeros", s.Std, s.Skewness)
	}
}

func TestCalculate_MatchesOutlierPackage(t *testing.T) {
	in := []float64{9, -4, 2.5, 7, 7, 31, 0, -12, 3}
	s, err := Calculate(in, outlier.WithMultiplier(2))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	q1, q3, err := outlier.Quartiles(in)
	if err != nil {
		t.Fatalf("Quartiles: %v", err)
	}
	median, err := outlier.Quantile(in, 0.5)
	if err != nil {
		t.Fatalf("Quantile: %v", err)
	}
	fence, err := outlier.Fences(in, outlier.WithMultiplier(2))
	if err != nil {
		t.Fatalf("Fences: %v", err)
	}

	testutil.RequireSliceEqual(t, []float64{s.Q1, s.Median, s.Q3}, []float64{q1, median, q3})
	if s.Fence != fence {
		t.Errorf("Fence: got %+v, want %+v", s.Fence, fence)
	}
	if in[0] != 9 || in[1] != -4 {
		t.Errorf("Calculate sorted its input: %v", in)
	}
}

func TestCalculate_InvalidMultiplier(t *testing.T) {
	if _, err := Calculate([]float64{1, 2, 3}, outlier.WithMultiplier(math.Inf(1))); !errors.Is(err, outlier.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	for _, in := range [][]float64{nil, {1, math.NaN()}} {
		if _, err := Calculate(in); !errors.Is(err, outlier.ErrInvalidInput) {
			t.Errorf("Calculate(%v) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil) = %g, want 0", got)
	}
	testutil.RequireSliceNearlyEqual(t, []float64{RMS([]float64{3, -3, 3, -3})}, []float64{3}, tolerance)
}
