package stats

import (
	"fmt"
	"math"
)

// TResult is a computed two-sample t-statistic.
type TResult struct {
	T        float64 // the statistic itself
	DF       float64 // degrees of freedom
	MeanDiff float64 // mean(x) - mean(y)
	StdErr   float64 // estimated standard error of the difference
}

// WelchT computes the Welch two-sample t-statistic for x and y, which does
// not assume equal variances. Degrees of freedom follow Welch-Satterthwaite.
func WelchT(x, y []float64) (TResult, error) {
	if len(x) < 2 || len(y) < 2 {
		return TResult{}, fmt.Errorf("welch t: %w", ErrShortSample)
	}
	n1, n2 := float64(len(x)), float64(len(y))
	v1, v2 := Variance(x), Variance(y)
	se2 := v1/n1 + v2/n2
	if se2 == 0 {
		return TResult{}, fmt.Errorf("welch t: zero variance in both samples")
	}
	se := math.Sqrt(se2)
	diff := Mean(x) - Mean(y)
	df := se2 * se2 / (v1*v1/(n1*n1*(n1-1)) + v2*v2/(n2*n2*(n2-1)))
	return TResult{T: diff / se, DF: df, MeanDiff: diff, StdErr: se}, nil
}

// PooledT computes the equal-variance two-sample t-statistic with n1+n2-2
// degrees of freedom. Kept for the classic equal-variance demonstration.
func PooledT(x, y []float64) (TResult, error) {
	if len(x) < 2 || len(y) < 2 {
		return TResult{}, fmt.Errorf("pooled t: %w", ErrShortSample)
	}
	n1, n2 := float64(len(x)), float64(len(y))
	sp2 := ((n1-1)*Variance(x) + (n2-1)*Variance(y)) / (n1 + n2 - 2)
	if sp2 == 0 {
		return TResult{}, fmt.Errorf("pooled t: zero pooled variance")
	}
	se := math.Sqrt(sp2 * (1/n1 + 1/n2))
	diff := Mean(x) - Mean(y)
	return TResult{T: diff / se, DF: n1 + n2 - 2, MeanDiff: diff, StdErr: se}, nil
}
