// Package bigram: sentinel error set (unified, consistent).
// Only package-level sentinels, matched via errors.Is; no panics on user
// input anywhere in the package.

package bigram

import "errors"

var (
	// ErrBadPseudocount is returned by Build when pseudocount is not
	// strictly positive; smoothing must guarantee nonzero cells.
	ErrBadPseudocount = errors.New("bigram: pseudocount must be > 0")

	// ErrAlphabetMismatch is returned by Load when a persisted model was
	// built against a different alphabet than the one in use.
	ErrAlphabetMismatch = errors.New("bigram: model alphabet differs from the alphabet in use")

	// ErrBadModel is returned by Load when the persisted record is
	// structurally malformed (wrong matrix shape, non-finite or
	// non-positive cells).
	ErrBadModel = errors.New("bigram: malformed model record")
)
