// Package outlier implements IQR-based (Tukey fence) outlier capping.
//
// Cap computes Q1 and Q3 of a sequence with linearly interpolated quantiles
// and clamps every value into [Q1 - k*IQR, Q3 + k*IQR], k = 1.5 by default.
// Rows are never dropped: extreme values are winsorized to the nearest fence.
//
// All functions are pure. They read their input, allocate their own
// intermediates, and may be called concurrently on disjoint columns.
package outlier

import "math"

// DefaultMultiplier is the conventional Tukey fence multiplier.
const DefaultMultiplier = 1.5

// Option configures fence computation.
type Option func(*config)

type config struct {
	multiplier float64
}

func defaultConfig() config {
	return config{multiplier: DefaultMultiplier}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := validateMultiplier(cfg.multiplier); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithMultiplier sets the fence multiplier k. k must be finite and >= 0.
func WithMultiplier(k float64) Option {
	return func(c *config) {
		c.multiplier = k
	}
}

// Bounds is an inclusive [Lower, Upper] fence.
type Bounds struct {
	Lower float64
	Upper float64
}

// Clamp returns v limited to the bounds.
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Lower {
		return b.Lower
	}
	if v > b.Upper {
		return b.Upper
	}
	return v
}

// Contains reports whether Lower <= v <= Upper.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// Apply writes the clamped values of src into dst and returns the number of
// values that changed. dst and src may alias.
// Panics if len(dst) < len(src).
func (b Bounds) Apply(dst, src []float64) int {
	if len(dst) < len(src) {
		panic("outlier: dst shorter than src")
	}
	changed := 0
	for i, v := range src {
		c := b.Clamp(v)
		if c != v {
			changed++
		}
		dst[i] = c
	}
	return changed
}

// Fences returns the Tukey fence of values.
func Fences(values []float64, opts ...Option) (Bounds, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Bounds{}, err
	}
	q1, q3, err := Quartiles(values)
	if err != nil {
		return Bounds{}, err
	}
	return fence(q1, q3, cfg.multiplier), nil
}

// FenceOf returns the Tukey fence for precomputed quartiles q1 <= q3.
func FenceOf(q1, q3 float64, opts ...Option) (Bounds, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Bounds{}, err
	}
	if err := Validate([]float64{q1, q3}); err != nil {
		return Bounds{}, err
	}
	return fence(q1, q3, cfg.multiplier), nil
}

// fence saturates at ±MaxFloat64 so the bounds stay finite when the IQR or
// k*IQR overflows.
func fence(q1, q3, k float64) Bounds {
	if k == 0 {
		return Bounds{Lower: q1, Upper: q3}
	}
	iqr := q3 - q1
	return Bounds{Lower: saturate(q1 - k*iqr), Upper: saturate(q3 + k*iqr)}
}

func saturate(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// Cap returns a copy of values with each element clamped into the Tukey fence
// computed from values itself. The result has the same length and order as
// the input; the input is left untouched.
func Cap(values []float64, opts ...Option) ([]float64, error) {
	out, _, err := CapBounds(values, opts...)
	return out, err
}

// CapBounds is Cap that also returns the fence it applied.
func CapBounds(values []float64, opts ...Option) ([]float64, Bounds, error) {
	b, err := Fences(values, opts...)
	if err != nil {
		return nil, Bounds{}, err
	}
	return CapWithBounds(values, b), b, nil
}

// CapWithBounds returns a copy of values clamped into b. It performs no
// validation; NaN values pass through unchanged.
func CapWithBounds(values []float64, b Bounds) []float64 {
	out := make([]float64, len(values))
	b.Apply(out, values)
	return out
}
