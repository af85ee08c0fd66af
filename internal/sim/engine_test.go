package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReplicateDeterministicAcrossWorkers(t *testing.T) {
	fn := func(r *rand.Rand) (float64, error) { return r.Float64(), nil }

	base, err := Replicate(context.Background(), "det", 500, 1, 42, fn)
	require.NoError(t, err)
	require.Len(t, base, 500)

	for _, workers := range []int{2, 4, 7} {
		got, err := Replicate(context.Background(), "det", 500, workers, 42, fn)
		require.NoError(t, err)
		assert.Equal(t, base, got, "workers=%d changed the result vector", workers)
	}
}

func TestReplicateSeedSensitivity(t *testing.T) {
	fn := func(r *rand.Rand) (float64, error) { return r.Float64(), nil }
	a, err := Replicate(context.Background(), "seed", 100, 2, 1, fn)
	require.NoError(t, err)
	b, err := Replicate(context.Background(), "seed", 100, 2, 2, fn)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestReplicateErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	_, err := Replicate(context.Background(), "err", 100, 4, 42, func(r *rand.Rand) (float64, error) {
		return 0, boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestReplicateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Replicate(ctx, "cancel", 10000, 4, 42, func(r *rand.Rand) (float64, error) {
		return r.Float64(), nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReplicateRejectsBadReps(t *testing.T) {
	_, err := Replicate(context.Background(), "bad", 0, 1, 42, func(r *rand.Rand) (float64, error) {
		return 0, nil
	})
	assert.Error(t, err)
}
