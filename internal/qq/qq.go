// Package qq builds quantile-quantile comparisons between an empirical
// sample and a theoretical distribution.
package qq

import (
	"fmt"
	"sort"

	"statlab/internal/stats"
)

// Dist is a theoretical distribution a sample can be compared against.
type Dist interface {
	// Quantile returns the distribution quantile at probability p.
	Quantile(p float64) float64
	// Name identifies the distribution in plot labels.
	Name() string
}

// Normal is a normal distribution with the given mean and standard deviation.
type Normal struct {
	Mean float64
	SD   float64
}

// Quantile returns the normal quantile at probability p.
func (n Normal) Quantile(p float64) float64 {
	sd := n.SD
	if sd == 0 {
		sd = 1
	}
	return n.Mean + sd*stats.NormQuantile(p)
}

// Name identifies the distribution.
func (n Normal) Name() string {
	if n.Mean == 0 && (n.SD == 0 || n.SD == 1) {
		return "standard normal"
	}
	return fmt.Sprintf("normal(%.3g, %.3g)", n.Mean, n.SD)
}

// StudentT is a Student-t distribution with DF degrees of freedom.
type StudentT struct {
	DF float64
}

// Quantile returns the t quantile at probability p.
func (t StudentT) Quantile(p float64) float64 {
	return stats.TQuantile(p, t.DF)
}

// Name identifies the distribution.
func (t StudentT) Name() string {
	return fmt.Sprintf("t(%.4g df)", t.DF)
}

// Point pairs one empirical order statistic with its theoretical quantile.
type Point struct {
	Theoretical float64
	Empirical   float64
}

// Points pairs the sorted sample against dist quantiles at plotting
// positions (i - 0.5)/n, the same convention R's qqnorm uses for n > 10.
func Points(sample []float64, dist Dist) ([]Point, error) {
	n := len(sample)
	if n == 0 {
		return nil, stats.ErrEmptySample
	}
	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)
	out := make([]Point, n)
	for i, v := range sorted {
		p := (float64(i) + 0.5) / float64(n)
		out[i] = Point{Theoretical: dist.Quantile(p), Empirical: v}
	}
	return out, nil
}
