// Package cipher - the fixed alphabet and symbol indexing.
//
// This file pins down the closed symbol set every component works in and the
// O(1) symbol↔index mapping used by the codec and by bigram scoring.
//
// Design:
//   - The alphabet is a compile-time constant; there is no way to configure a
//     different one. Downstream packages may therefore cache 27×27 tables.
//   - SymbolIndex is branch-cheap and allocation-free; it is the single
//     membership test for the whole module.
package cipher

// Alphabet is the canonical ordered symbol set: the 26 Latin capitals
// followed by the word separator. Position in this string is the symbol's
// index everywhere in the module.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ_"

// AlphabetSize is len(Alphabet). Kept as a named constant so array types
// ([AlphabetSize]byte, [AlphabetSize][AlphabetSize]float64) stay readable.
const AlphabetSize = 27

// Separator is the symbol standing in for spaces and punctuation after
// normalization.
const Separator byte = '_'

// separatorIndex is the alphabet index of Separator (last position).
const separatorIndex = AlphabetSize - 1

// SymbolIndex returns the alphabet index of b, or -1 when b is outside the
// alphabet. This is the membership test used by Text validation, the codec
// and the bigram scorer.
//
// Complexity: O(1).
func SymbolIndex(b byte) int {
	if b >= 'A' && b <= 'Z' {
		return int(b - 'A')
	}
	if b == Separator {
		return separatorIndex
	}
	return -1
}

// isSymbol reports whether b belongs to the alphabet.
//
// Complexity: O(1).
func isSymbol(b byte) bool { return SymbolIndex(b) >= 0 }
