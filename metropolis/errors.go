// Package metropolis: sentinel error set (unified, consistent).
// Only package-level sentinels, matched via errors.Is. All of them are
// boundary validation failures — nothing errors mid-search, because the
// engine only ever constructs keys via Swap and only scores validated Text.

package metropolis

import "errors"

var (
	// ErrNilModel is returned when the reference bigram model is nil.
	ErrNilModel = errors.New("metropolis: nil reference model")

	// ErrBadTemperature is returned when InitialTemp is not strictly
	// positive; the acceptance probability exp(Δ/T) needs T > 0.
	ErrBadTemperature = errors.New("metropolis: initial temperature must be > 0")
)
