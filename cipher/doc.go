// Package cipher implements the monoalphabetic substitution cipher over a
// fixed 27-symbol alphabet: the Latin letters A–Z plus '_' as the word
// separator.
//
// 🚀 What does it provide?
//
//	The building blocks every other package in this module stands on:
//	  • Alphabet — the closed, process-wide 27-symbol set
//	  • Key      — a validated permutation of the alphabet (value type)
//	  • Text     — normalized text restricted to the alphabet (value type)
//	  • Encrypt / Decrypt — the substitution codec
//	  • Normalize — total mapping of arbitrary UTF-8 into Text
//
// ✨ Key guarantees:
//   - Keys are immutable values; Swap and Invert return fresh keys and
//     preserve the permutation invariant by construction.
//   - Decrypt(Encrypt(t, k), k) == t for every Text t and valid Key k.
//   - ParseKey(k.String()) == k for every valid Key k.
//   - Normalize is total: any input string maps onto a valid Text.
//
// ⚙️ Usage:
//
//	import "github.com/vdlabac/subcipher/cipher"
//
//	key := cipher.NewRandomKey(nil) // nil ⇒ deterministic default stream
//	txt := cipher.Normalize("Příliš žluťoučký kůň!")
//	ct, _ := cipher.Encrypt(txt, key)
//	pt, _ := cipher.Decrypt(ct, key)
//
// Randomness is always explicit: functions that need it accept a
// *rand.Rand, and a nil source selects a fixed deterministic stream so
// results stay reproducible by default.
//
// Errors are package-level sentinels (ErrInvalidKey, ErrInvalidSymbol,
// ErrInvalidPosition) matched with errors.Is; nothing in this package
// panics on user input.
package cipher
