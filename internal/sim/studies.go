package sim

import (
	"context"
	"fmt"
	"math/rand"

	"statlab/internal/rng"
	"statlab/internal/stats"
)

// MeanDiffStudy replicates "draw n from each group, take the difference of
// means" to build the empirical sampling distribution of the mean difference.
type MeanDiffStudy struct {
	GroupA, GroupB []float64
	SampleSize     int
	Replications   int
	Workers        int
	Seed           int64
}

// Run executes the study and returns the replicated mean differences.
func (s MeanDiffStudy) Run(ctx context.Context) ([]float64, error) {
	if err := checkSampleSize(s.SampleSize, len(s.GroupA), len(s.GroupB)); err != nil {
		return nil, err
	}
	return Replicate(ctx, "meandiff", s.Replications, s.Workers, s.Seed, func(r *rand.Rand) (float64, error) {
		a, err := rng.Sample(r, s.GroupA, s.SampleSize)
		if err != nil {
			return 0, err
		}
		b, err := rng.Sample(r, s.GroupB, s.SampleSize)
		if err != nil {
			return 0, err
		}
		return stats.Mean(a) - stats.Mean(b), nil
	})
}

// TStatStudy replicates the Welch t-statistic over repeated subsamples, the
// distribution a QQ plot compares against the theoretical t.
type TStatStudy struct {
	GroupA, GroupB []float64
	SampleSize     int
	Replications   int
	Workers        int
	Seed           int64
	Pooled         bool // use the equal-variance statistic instead of Welch
}

// Run executes the study and returns the replicated t-statistics.
func (s TStatStudy) Run(ctx context.Context) ([]float64, error) {
	if err := checkSampleSize(s.SampleSize, len(s.GroupA), len(s.GroupB)); err != nil {
		return nil, err
	}
	if s.SampleSize < 2 {
		return nil, fmt.Errorf("t-statistic study: %w", stats.ErrShortSample)
	}
	return Replicate(ctx, "tstat", s.Replications, s.Workers, s.Seed, func(r *rand.Rand) (float64, error) {
		a, err := rng.Sample(r, s.GroupA, s.SampleSize)
		if err != nil {
			return 0, err
		}
		b, err := rng.Sample(r, s.GroupB, s.SampleSize)
		if err != nil {
			return 0, err
		}
		var res stats.TResult
		if s.Pooled {
			res, err = stats.PooledT(a, b)
		} else {
			res, err = stats.WelchT(a, b)
		}
		if err != nil {
			return 0, err
		}
		return res.T, nil
	})
}

// ParametricStudy fits a normal distribution to each group by sample mean
// and standard deviation, then replicates the statistic on synthetic draws
// from the fitted distributions.
type ParametricStudy struct {
	GroupA, GroupB []float64
	SampleSize     int
	Replications   int
	Workers        int
	Seed           int64
}

// Run executes the parametric simulation and returns replicated Welch
// t-statistics computed on synthetic samples.
func (s ParametricStudy) Run(ctx context.Context) ([]float64, error) {
	if len(s.GroupA) < 2 || len(s.GroupB) < 2 {
		return nil, fmt.Errorf("parametric study: %w", stats.ErrShortSample)
	}
	if s.SampleSize < 2 {
		return nil, fmt.Errorf("parametric study: sample size must be at least 2, got %d", s.SampleSize)
	}
	meanA, sdA := stats.Mean(s.GroupA), stats.StdDev(s.GroupA)
	meanB, sdB := stats.Mean(s.GroupB), stats.StdDev(s.GroupB)
	return Replicate(ctx, "parametric", s.Replications, s.Workers, s.Seed, func(r *rand.Rand) (float64, error) {
		a := rng.Normal(r, meanA, sdA, s.SampleSize)
		b := rng.Normal(r, meanB, sdB, s.SampleSize)
		res, err := stats.WelchT(a, b)
		if err != nil {
			return 0, err
		}
		return res.T, nil
	})
}

func checkSampleSize(n, lenA, lenB int) error {
	if n <= 0 {
		return fmt.Errorf("sample size must be positive, got %d", n)
	}
	if n > lenA || n > lenB {
		return fmt.Errorf("sample size %d exceeds group sizes (%d, %d)", n, lenA, lenB)
	}
	return nil
}
