package stats

import (
	"math"
	"testing"
)

func TestNormQuantile(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959964},
		{0.025, -1.959964},
		{0.95, 1.644854},
		{0.0001, -3.719016}, // tail branch
		{0.9999, 3.719016},
	}
	for _, tt := range tests {
		if got := NormQuantile(tt.p); !almostEqual(got, tt.want, 1e-5) {
			t.Errorf("NormQuantile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !math.IsInf(NormQuantile(0), -1) || !math.IsInf(NormQuantile(1), 1) {
		t.Error("NormQuantile should return infinities at the boundaries")
	}
}

func TestNormCDF(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1.959964, 0.975},
		{-1.959964, 0.025},
		{3, 0.998650},
	}
	for _, tt := range tests {
		if got := NormCDF(tt.x); !almostEqual(got, tt.want, 1e-6) {
			t.Errorf("NormCDF(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestNormRoundTrip(t *testing.T) {
	for _, p := range []float64{0.001, 0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99, 0.999} {
		if got := NormCDF(NormQuantile(p)); !almostEqual(got, p, 1e-8) {
			t.Errorf("NormCDF(NormQuantile(%v)) = %v", p, got)
		}
	}
}

func TestTCDF(t *testing.T) {
	tests := []struct {
		x, df float64
		want  float64
	}{
		{0, 5, 0.5},
		{2.228139, 10, 0.975},
		{-2.228139, 10, 0.025},
		{12.7062, 1, 0.975},
		{1.812461, 10, 0.95},
	}
	for _, tt := range tests {
		if got := TCDF(tt.x, tt.df); !almostEqual(got, tt.want, 1e-5) {
			t.Errorf("TCDF(%v, df=%v) = %v, want %v", tt.x, tt.df, got, tt.want)
		}
	}
}

func TestTQuantile(t *testing.T) {
	tests := []struct {
		p, df float64
		want  float64
	}{
		{0.975, 10, 2.228139},
		{0.025, 10, -2.228139},
		{0.975, 1, 12.7062},
		{0.95, 30, 1.697261},
		{0.5, 7, 0},
	}
	for _, tt := range tests {
		if got := TQuantile(tt.p, tt.df); !almostEqual(got, tt.want, 1e-4) {
			t.Errorf("TQuantile(%v, df=%v) = %v, want %v", tt.p, tt.df, got, tt.want)
		}
	}
}

func TestTQuantileApproachesNormal(t *testing.T) {
	// With large df the t quantile converges toward the normal quantile.
	if got, want := TQuantile(0.975, 1000), 1.962339; !almostEqual(got, want, 1e-3) {
		t.Errorf("TQuantile(0.975, 1000) = %v, want ~%v", got, want)
	}
	if TQuantile(0.975, 1000) <= NormQuantile(0.975) {
		t.Error("t quantile should stay above the normal quantile")
	}
}
