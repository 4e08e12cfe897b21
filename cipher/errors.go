// Package cipher: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the cipher
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package cipher

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cipher: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidKey is returned by ParseKey when the input string is not
	// exactly a permutation of the alphabet: wrong length, a repeated
	// symbol, or a symbol outside the alphabet.
	ErrInvalidKey = errors.New("cipher: key is not a permutation of the alphabet")

	// ErrInvalidSymbol is returned by NewText, Encrypt and Decrypt when the
	// input contains a symbol outside the alphabet. Callers must Normalize
	// before encoding/decoding; the codec itself never normalizes.
	ErrInvalidSymbol = errors.New("cipher: symbol outside the alphabet")

	// ErrInvalidPosition is returned by Key.Swap when a position is outside
	// [0..AlphabetSize-1].
	ErrInvalidPosition = errors.New("cipher: key position out of range")
)
