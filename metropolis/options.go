// Package metropolis - search configuration.
//
// Options is a plain value struct with documented defaults; callers start
// from DefaultOptions and override what they care about. Validation happens
// once at the entry point (Search / SearchParallel), never mid-loop.
package metropolis

import "github.com/vdlabac/subcipher/cipher"

// Documented defaults — single source of truth for zero-config runs.
const (
	// DefaultIterations is the number of proposal steps per chain.
	DefaultIterations = 20000

	// DefaultInitialTemp is the starting temperature T0 of the linear
	// cooling schedule.
	DefaultInitialTemp = 2.0

	// tempFloor keeps the temperature strictly positive as the schedule
	// approaches zero at the last iterations, so exp(Δ/T) stays
	// well-defined.
	tempFloor = 1e-6
)

// Options configures one search invocation.
type Options struct {
	// Iterations is the number of proposal steps. Values ≤ 0 perform no
	// steps: the result is the initial state verbatim with a single-entry
	// history.
	Iterations int

	// InitialTemp is T0 of the cooling schedule T = T0·(1 − iter/max).
	// Must be strictly positive.
	InitialTemp float64

	// Seed drives the deterministic RNG. Seed 0 selects a fixed default
	// stream (same policy as everywhere in this module), so runs are
	// reproducible unless the caller explicitly varies the seed.
	Seed int64

	// InitialKey optionally fixes the starting key (e.g. a
	// frequency-informed guess). Nil ⇒ a random key drawn from the run's
	// RNG stream.
	InitialKey *cipher.Key

	// Chains is the number of independent restarts used by SearchParallel;
	// values ≤ 0 are treated as 1. Plain Search ignores it.
	Chains int
}

// DefaultOptions returns the documented defaults: 20000 iterations,
// T0 = 2.0, deterministic seed, random initial key, single chain.
func DefaultOptions() Options {
	return Options{
		Iterations:  DefaultIterations,
		InitialTemp: DefaultInitialTemp,
		Seed:        0,
		InitialKey:  nil,
		Chains:      1,
	}
}

// validate checks option consistency; boundary errors only.
func (o Options) validate() error {
	if !(o.InitialTemp > 0) { // also rejects NaN
		return ErrBadTemperature
	}
	return nil
}
