package testutil

import "testing"

func TestNoiseReproducible(t *testing.T) {
	a := Noise(7, 2, 64)
	b := Noise(7, 2, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -2 || a[i] > 2 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(4)
	for i, v := range r {
		if v != float64(i+1) {
			t.Fatalf("Ramp[%d] = %v, want %d", i, v, i+1)
		}
	}
}

func TestConstant(t *testing.T) {
	for i, v := range Constant(0.5, 3) {
		if v != 0.5 {
			t.Fatalf("Constant[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestWithSpikes(t *testing.T) {
	base := Ramp(5)
	s := WithSpikes(base, 100, 1, 4, 9)
	want := []float64{1, 100, 3, 4, 100}
	RequireSliceEqual(t, s, want)
	if base[1] != 2 {
		t.Fatalf("WithSpikes mutated its input: base[1] = %v", base[1])
	}
}
