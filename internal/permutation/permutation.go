// Package permutation implements the label-shuffling null distribution for
// the two-group mean difference. Pool both groups, reshuffle the pooled
// values, split at the original group boundary, and recompute the statistic;
// the fraction of shuffles at least as extreme as the observed difference
// estimates the p-value under the null of no group effect.
package permutation

import (
	"context"
	"fmt"
	"math"

	"statlab/internal/logging"
	"statlab/internal/rng"
	"statlab/internal/stats"
)

// Alternative selects the tail(s) counted as extreme.
type Alternative string

const (
	TwoSided Alternative = "two-sided"
	Greater  Alternative = "greater"
	Less     Alternative = "less"
)

// ParseAlternative maps a flag value to an Alternative.
func ParseAlternative(s string) (Alternative, error) {
	switch Alternative(s) {
	case TwoSided, Greater, Less:
		return Alternative(s), nil
	case "":
		return TwoSided, nil
	}
	return "", fmt.Errorf("invalid alternative %q (want two-sided, greater, or less)", s)
}

// NullSummary describes the permutation null distribution.
type NullSummary struct {
	Mean         float64
	StdDev       float64
	Min          float64
	Max          float64
	Percentile95 float64
	Percentile99 float64
}

// Result is the outcome of a permutation test.
type Result struct {
	Observed       float64 // mean(x) - mean(y) on the real labels
	PValue         float64 // #extreme / B
	SmoothedPValue float64 // (#extreme + 1) / (B + 1), never exactly zero
	Extreme        int     // shuffles at least as extreme as Observed
	Permutations   int
	Alternative    Alternative
	Null           NullSummary
	NullValues     []float64 // the full null distribution, replication order
}

// Test runs a permutation test of mean(x) - mean(y) with B label shuffles.
// Deterministic for a fixed seed.
func Test(ctx context.Context, x, y []float64, permutations int, seed int64, alt Alternative) (*Result, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("permutation test: %w", stats.ErrEmptySample)
	}
	if permutations <= 0 {
		return nil, fmt.Errorf("permutation test: permutations must be positive, got %d", permutations)
	}

	timer := logging.StartTimer(logging.CategoryPerm, "Test")
	defer timer.Stop()

	observed := stats.Mean(x) - stats.Mean(y)
	pooled := make([]float64, 0, len(x)+len(y))
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)
	nx := len(x)

	r := rng.Stream(seed, "permutation")
	null := make([]float64, permutations)
	extreme := 0
	for b := 0; b < permutations; b++ {
		if b%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rng.Shuffle(r, pooled)
		diff := stats.Mean(pooled[:nx]) - stats.Mean(pooled[nx:])
		null[b] = diff
		if isExtreme(diff, observed, alt) {
			extreme++
		}
	}

	res := &Result{
		Observed:       observed,
		PValue:         float64(extreme) / float64(permutations),
		SmoothedPValue: float64(extreme+1) / float64(permutations+1),
		Extreme:        extreme,
		Permutations:   permutations,
		Alternative:    alt,
		Null:           summarizeNull(null),
		NullValues:     null,
	}
	logging.Perm("observed %.4f, %d/%d extreme, p=%.4f (smoothed %.4f)",
		observed, extreme, permutations, res.PValue, res.SmoothedPValue)
	return res, nil
}

func isExtreme(diff, observed float64, alt Alternative) bool {
	switch alt {
	case Greater:
		return diff >= observed
	case Less:
		return diff <= observed
	default:
		return math.Abs(diff) >= math.Abs(observed)
	}
}

func summarizeNull(null []float64) NullSummary {
	s, err := stats.Describe(null)
	if err != nil {
		return NullSummary{}
	}
	return NullSummary{
		Mean:         s.Mean,
		StdDev:       s.StdDev,
		Min:          s.Min,
		Max:          s.Max,
		Percentile95: stats.Quantile(null, 0.95),
		Percentile99: stats.Quantile(null, 0.99),
	}
}
