// Package stats provides the descriptive statistics and two-sample test
// statistics used by the simulation and permutation engines.
package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptySample is returned when a statistic needs at least one value.
	ErrEmptySample = errors.New("empty sample")
	// ErrShortSample is returned when a variance-based statistic needs at
	// least two values.
	ErrShortSample = errors.New("sample needs at least two values")
)

// Summary holds the descriptive statistics of a sample.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the unbiased sample variance (n-1 denominator).
func Variance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return math.NaN()
	}
	m := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(n-1)
}

// StdDev returns the sample standard deviation.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Quantile returns the type-7 quantile of xs at probability p, the same
// convention R uses by default. xs does not need to be sorted.
func Quantile(xs []float64, p float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	if p <= 0 {
		return s[0]
	}
	if p >= 1 {
		return s[n-1]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return s[n-1]
	}
	return s[lo] + (h-float64(lo))*(s[hi]-s[lo])
}

// Median returns the sample median.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// Describe computes the full descriptive summary of a sample.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptySample
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	out := Summary{
		N:      len(s),
		Mean:   Mean(s),
		Min:    s[0],
		Q1:     Quantile(s, 0.25),
		Median: Quantile(s, 0.5),
		Q3:     Quantile(s, 0.75),
		Max:    s[len(s)-1],
	}
	if len(s) >= 2 {
		out.StdDev = StdDev(s)
	}
	return out, nil
}
