package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"Single", []float64{5}, 5},
		{"Symmetric", []float64{-1, 0, 1}, 0},
		{"Weights", []float64{2523, 2551, 2557, 2594}, 2556.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.xs); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("Mean(%v) = %v, want %v", tt.xs, got, tt.want)
			}
		})
	}
	if !math.IsNaN(Mean(nil)) {
		t.Error("Mean(nil) should be NaN")
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	// Sample variance of 2,4,4,4,5,5,7,9 with n-1 denominator is 32/7.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	want := 32.0 / 7.0
	if got := Variance(xs); !almostEqual(got, want, 1e-12) {
		t.Errorf("Variance = %v, want %v", got, want)
	}
	if got := StdDev(xs); !almostEqual(got, math.Sqrt(want), 1e-12) {
		t.Errorf("StdDev = %v, want %v", got, math.Sqrt(want))
	}
	if !math.IsNaN(Variance([]float64{1})) {
		t.Error("Variance of a single value should be NaN")
	}
}

func TestQuantile(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 4},
		{1, 5},
		{0.1, 1.4}, // type-7 interpolation
	}
	for _, tt := range tests {
		if got := Quantile(xs, tt.p); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("Quantile(p=%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestQuantileDoesNotMutate(t *testing.T) {
	xs := []float64{3, 1, 2}
	_ = Quantile(xs, 0.5)
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Errorf("Quantile mutated its input: %v", xs)
	}
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if s.N != 5 || s.Min != 1 || s.Max != 5 || s.Median != 3 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if !almostEqual(s.Mean, 3, 1e-12) {
		t.Errorf("Mean = %v, want 3", s.Mean)
	}

	if _, err := Describe(nil); err != ErrEmptySample {
		t.Errorf("Describe(nil) error = %v, want ErrEmptySample", err)
	}
}

func TestWelchT(t *testing.T) {
	x := []float64{30.02, 29.99, 30.11, 29.97, 30.01, 29.99}
	y := []float64{29.89, 29.93, 29.72, 29.98, 30.02, 29.98}
	res, err := WelchT(x, y)
	if err != nil {
		t.Fatalf("WelchT failed: %v", err)
	}
	// Hand-computed: t = 1.959, df = 7.03.
	if !almostEqual(res.T, 1.959, 5e-3) {
		t.Errorf("T = %v, want ~1.959", res.T)
	}
	if !almostEqual(res.DF, 7.03, 5e-2) {
		t.Errorf("DF = %v, want ~7.03", res.DF)
	}
}

func TestPooledT(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2, 3, 4}
	res, err := PooledT(x, y)
	if err != nil {
		t.Fatalf("PooledT failed: %v", err)
	}
	if res.T != 0 {
		t.Errorf("identical samples should give T = 0, got %v", res.T)
	}
	if res.DF != 6 {
		t.Errorf("DF = %v, want 6", res.DF)
	}
}

func TestTShortSamples(t *testing.T) {
	if _, err := WelchT([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("WelchT should reject samples with fewer than two values")
	}
	if _, err := PooledT(nil, nil); err == nil {
		t.Error("PooledT should reject empty samples")
	}
}
