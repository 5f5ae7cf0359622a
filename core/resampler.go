package core

import (
	"context"

	"golang.org/x/sync/errgroup"

	"resampledb/sample"
)

// Resampler repeatedly draws a sample from a source, applies a statistic and
// collects the results into a pre-allocated ResultCollection. Iterations are
// independent: iteration i seeds its own RNG stream from (seed, i) and owns
// slot i, so the output is identical for any worker count.
type Resampler struct {
	source  *sample.Source
	sampler sample.Sampler
	stat    Statistic
	seed    int64
	workers int
}

func NewResampler(src *sample.Source, smp sample.Sampler, stat Statistic) *Resampler {
	return &Resampler{
		source:  src,
		sampler: smp,
		stat:    stat,
		seed:    0,
		workers: 1,
	}
}

func (r *Resampler) SetSeed(seed int64) *Resampler {
	r.seed = seed
	return r
}

func (r *Resampler) SetWorkers(workers int) *Resampler {
	r.workers = workers
	return r
}

// Run executes iterations draws. An empty source fails before any iteration;
// iterations <= 0 yields an empty collection. Any draw or statistic error
// aborts the run and propagates, no partial result is returned.
func (r *Resampler) Run(ctx context.Context, iterations int) (*ResultCollection, error) {
	if r.source.Len() == 0 {
		return nil, sample.ErrEmptySource
	}

	results := NewResultCollection(iterations)
	if iterations <= 0 {
		return results, nil
	}

	if r.workers <= 1 {
		if err := r.runRange(ctx, results, 0, iterations); err != nil {
			return nil, err
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	step := (iterations + r.workers - 1) / r.workers
	for low := 0; low < iterations; low += step {
		high := low + step
		if high > iterations {
			high = iterations
		}
		low, high := low, high
		g.Go(func() error {
			return r.runRange(gctx, results, low, high)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runRange covers the half-open slot interval [low, high).
func (r *Resampler) runRange(ctx context.Context, results *ResultCollection, low, high int) error {
	for i := low; i < high; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rng := sample.NewStream(r.seed, int64(i))
		s, err := r.sampler.Draw(r.source, rng)
		if err != nil {
			return err
		}
		value, err := r.stat.Compute(s)
		if err != nil {
			return err
		}
		if err := results.Set(i, value); err != nil {
			return err
		}
	}
	return nil
}
