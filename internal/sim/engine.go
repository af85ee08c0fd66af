// Package sim is the Monte Carlo replication engine. It repeats a statistic
// computation R times under derived per-replication seeds, so a study run is
// byte-identical for a fixed base seed no matter how many workers execute it.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"statlab/internal/logging"
	"statlab/internal/rng"
)

// Replicate runs fn once per replication and collects the resulting values
// in replication order. Each replication gets its own generator derived from
// (seed, name, index), which is what makes the result independent of the
// worker count.
func Replicate(ctx context.Context, name string, reps, workers int, seed int64, fn func(r *rand.Rand) (float64, error)) ([]float64, error) {
	if reps <= 0 {
		return nil, fmt.Errorf("replications must be positive, got %d", reps)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > reps {
		workers = reps
	}

	timer := logging.StartTimer(logging.CategorySim, name)
	defer timer.Stop()
	logging.Sim("%s: %d replications across %d workers, seed %d", name, reps, workers, seed)

	values := make([]float64, reps)
	g, ctx := errgroup.WithContext(ctx)
	// Contiguous index chunks; each worker writes a disjoint slice region.
	chunk := (reps + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > reps {
			hi = reps
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := fn(rng.New(rng.Derive(seed, name, uint64(i))))
				if err != nil {
					return fmt.Errorf("replication %d: %w", i, err)
				}
				values[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
