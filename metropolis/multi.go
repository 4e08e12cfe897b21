// Package metropolis - multi-chain restarts.
//
// Independent search runs are embarrassingly parallel: each chain owns its
// private state and only reads the immutable reference model. SearchParallel
// exploits that with one goroutine per chain and derived, decorrelated RNG
// streams, keeping the best result across chains.
//
// Cancellation is cooperative and coarse: the context gates chain startup;
// a chain that already started runs to its Iterations bound (the loop itself
// has no cancellation checkpoint by design — it is pure CPU work bounded by
// Iterations).
package metropolis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
)

// SearchParallel runs opts.Chains independent chains concurrently and
// returns the result with the highest BestFitness. Chain c uses a seed
// derived from opts.Seed and the chain index, so the whole ensemble is
// reproducible from one seed while chains stay decorrelated.
//
// Chains ≤ 0 is treated as 1; with exactly one chain this is Search plus a
// context check.
//
// Errors: the same boundary sentinels as Search, or ctx.Err() when the
// context is cancelled before every chain has started.
func SearchParallel(ctx context.Context, ciphertext cipher.Text, model *bigram.Model, opts Options) (Result, error) {
	if model == nil {
		return Result{}, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	chains := opts.Chains
	if chains < 1 {
		chains = 1
	}

	var (
		results = make([]Result, chains)
		g, gctx = errgroup.WithContext(ctx)
		c       int
	)
	for c = 0; c < chains; c++ {
		chainOpts := opts
		chainOpts.Chains = 1
		// Chain 0 keeps the caller's seed verbatim so a single-chain
		// ensemble reproduces plain Search exactly; further chains get
		// derived streams.
		if c > 0 {
			chainOpts.Seed = deriveSeed(opts.Seed, uint64(c))
		}

		idx := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Search(ciphertext, model, chainOpts)
			if err != nil {
				return err
			}
			results[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	bestIdx := 0
	for c = 1; c < chains; c++ {
		if results[c].BestFitness > results[bestIdx].BestFitness {
			bestIdx = c
		}
	}
	return results[bestIdx], nil
}
