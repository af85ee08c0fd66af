package qq

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"statlab/internal/rng"
)

func TestPointsShape(t *testing.T) {
	sample := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	points, err := Points(sample, Normal{SD: 1})
	if err != nil {
		t.Fatalf("Points failed: %v", err)
	}
	if len(points) != len(sample) {
		t.Fatalf("len = %d, want %d", len(points), len(sample))
	}

	// Empirical values are the sorted sample.
	want := append([]float64(nil), sample...)
	sort.Float64s(want)
	got := make([]float64, len(points))
	for i, p := range points {
		got[i] = p.Empirical
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("empirical quantiles mismatch (-want +got):\n%s", diff)
	}

	// Theoretical quantiles are strictly increasing.
	for i := 1; i < len(points); i++ {
		if points[i].Theoretical <= points[i-1].Theoretical {
			t.Errorf("theoretical quantiles not increasing at %d", i)
		}
	}
}

func TestPointsEmpty(t *testing.T) {
	if _, err := Points(nil, Normal{SD: 1}); err == nil {
		t.Error("empty sample should fail")
	}
}

func TestNormalQuantileScaling(t *testing.T) {
	n := Normal{Mean: 100, SD: 15}
	if got := n.Quantile(0.5); math.Abs(got-100) > 1e-9 {
		t.Errorf("median of N(100, 15) = %v, want 100", got)
	}
	if got := n.Quantile(0.975); math.Abs(got-(100+15*1.959964)) > 1e-3 {
		t.Errorf("97.5%% quantile = %v", got)
	}
}

func TestStudentTWiderThanNormal(t *testing.T) {
	// Heavy tails: t quantiles exceed normal quantiles in the upper tail.
	tq := StudentT{DF: 5}.Quantile(0.99)
	nq := Normal{SD: 1}.Quantile(0.99)
	if tq <= nq {
		t.Errorf("t(5) quantile %v should exceed normal quantile %v", tq, nq)
	}
}

func TestNormalSampleNearIdentity(t *testing.T) {
	// A large standard normal sample compared to a fitted normal should
	// land close to the identity line.
	sample := rng.Normal(rng.New(42), 0, 1, 5000)
	points, err := Points(sample, Normal{SD: 1})
	if err != nil {
		t.Fatalf("Points failed: %v", err)
	}
	// Compare in the central region; tails of a finite sample wobble.
	var maxGap float64
	for _, p := range points {
		if math.Abs(p.Theoretical) < 1.5 {
			gap := math.Abs(p.Empirical - p.Theoretical)
			if gap > maxGap {
				maxGap = gap
			}
		}
	}
	if maxGap > 0.25 {
		t.Errorf("central QQ gap %v too large for a well-behaved sample", maxGap)
	}
}

func TestDistNames(t *testing.T) {
	if got := (Normal{SD: 1}).Name(); got != "standard normal" {
		t.Errorf("Name = %q", got)
	}
	if got := (StudentT{DF: 8}).Name(); got != "t(8 df)" {
		t.Errorf("Name = %q", got)
	}
}
