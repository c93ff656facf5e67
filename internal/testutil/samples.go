// Package testutil provides deterministic sample generators and assertion
// helpers shared by the package tests.
package testutil

import (
	"math/rand"
	"slices"
)

// Noise returns length uniform values in [-amplitude, amplitude] drawn from a
// fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant returns length copies of value.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns 1, 2, ..., length.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// WithSpikes returns a copy of values where each index in at is replaced by
// spike. Out-of-range indices are ignored.
func WithSpikes(values []float64, spike float64, at ...int) []float64 {
	out := slices.Clone(values)
	for _, i := range at {
		if i >= 0 && i < len(out) {
			out[i] = spike
		}
	}
	return out
}
