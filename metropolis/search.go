// Package metropolis - the single-chain search loop.
//
// Design:
//   - Strictly sequential within one run: each step depends on the previous
//     acceptance decision, so there is no internal parallelism. All work is
//     CPU-bound and synchronous; runtime is bounded by Iterations alone.
//   - No I/O, no logging, no panics; the only failure modes are boundary
//     validation sentinels checked before the loop starts.
//   - Fitness is recomputed by full rescoring of the candidate decryption
//     per proposal — O(len(ciphertext)) per step, the dominant cost.
//
// Complexity: O(Iterations · len(ciphertext)) time,
// O(Iterations + len(ciphertext)) space (history + decode buffer).
package metropolis

import (
	"math"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
)

// Result is the outcome of one search run (or the best of several chains).
type Result struct {
	// Key is the best-ever key visited by the chain.
	Key cipher.Key

	// Plaintext is the ciphertext decrypted under Key.
	Plaintext cipher.Text

	// BestFitness is the log-likelihood of Plaintext under the model.
	BestFitness float64

	// History records the chain's current fitness after every step, with
	// the initial fitness at entry 0: exactly Iterations+1 entries. A plain
	// ordered float sequence, ready for any renderer.
	History []float64
}

// Search runs one Metropolis–Hastings chain over key-space and returns the
// best key visited, its decryption, and the fitness history.
//
// State machine per step:
//  1. propose: swap two distinct positions of the current key,
//  2. score the candidate decryption under model,
//  3. accept if Δ ≥ 0, else with probability exp(Δ/T),
//  4. track the best-ever state independently of the chain position,
//  5. append current fitness to history,
//  6. cool: T = T0·(1 − iter/max), floored at a small positive epsilon.
//
// Errors: ErrNilModel, ErrBadTemperature, or cipher.ErrInvalidSymbol when
// ciphertext bypassed normalization. Never fails mid-loop.
func Search(ciphertext cipher.Text, model *bigram.Model, opts Options) (Result, error) {
	if model == nil {
		return Result{}, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		rng   = rngFromSeed(opts.Seed)
		iters = opts.Iterations
	)
	if iters < 0 {
		iters = 0
	}

	// Init: caller-supplied start or a random key from this run's stream.
	var current cipher.Key
	if opts.InitialKey != nil {
		current = *opts.InitialKey
	} else {
		current = cipher.NewRandomKey(rng)
	}

	plain, err := cipher.Decrypt(ciphertext, current)
	if err != nil {
		return Result{}, err
	}

	var (
		currentFitness = model.Score(plain)
		best           = current
		bestFitness    = currentFitness
		history        = make([]float64, 1, iters+1)
		temp           = opts.InitialTemp
	)
	history[0] = currentFitness

	var (
		iter             int
		i, j             int
		candidate        cipher.Key
		candidatePlain   cipher.Text
		candidateFitness float64
		delta            float64
	)
	for iter = 0; iter < iters; iter++ {
		// Propose: exchange the images at two distinct positions.
		i, j = pickTwoDistinct(rng, cipher.AlphabetSize)
		candidate, _ = current.Swap(i, j) // in-range by construction

		candidatePlain, _ = cipher.Decrypt(ciphertext, candidate)
		candidateFitness = model.Score(candidatePlain)
		delta = candidateFitness - currentFitness

		// Metropolis criterion: improvements always, deteriorations with
		// probability exp(Δ/T) against a uniform draw in [0,1).
		if delta >= 0 || rng.Float64() < math.Exp(delta/temp) {
			current = candidate
			currentFitness = candidateFitness
		}

		// Best-tracking is independent of the chain position: the chain may
		// accept a worse state and wander, the best-ever must not.
		if currentFitness > bestFitness {
			best = current
			bestFitness = currentFitness
		}

		history = append(history, currentFitness)

		// Linear cooling, floored to stay strictly positive at the end.
		temp = opts.InitialTemp * (1 - float64(iter+1)/float64(iters))
		if temp < tempFloor {
			temp = tempFloor
		}
	}

	bestPlain, _ := cipher.Decrypt(ciphertext, best) // ciphertext already validated above

	return Result{
		Key:         best,
		Plaintext:   bestPlain,
		BestFitness: bestFitness,
		History:     history,
	}, nil
}
