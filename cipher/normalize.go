// Package cipher - text normalization into the closed alphabet.
//
// Normalize is the single entry point for arbitrary UTF-8: corpus text,
// plaintext before encryption, anything. Keeping corpus and message
// preprocessing on the same code path matters because the bigram statistics
// are sensitive to separator run-length; two different collapsing policies
// would silently skew scores.
//
// Separator policy (fixed here, applied everywhere):
//   - every non-Latin-letter character maps to the separator,
//   - consecutive separators collapse to a single one,
//   - leading and trailing separators are trimmed.
//
// Diacritics are handled generically via Unicode decomposition (NFD) with
// combining marks stripped, so Czech Á/Č/Ř/Ž reduce to A/C/R/Z without a
// hand-kept replacement table, and the same holds for any other Latin-based
// script.
package cipher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks (category Mn),
// reducing accented letters to their base Latin letter.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize maps raw onto Text: decompose diacritics to base letters,
// upper-case, replace every non-Latin-letter with the separator, collapse
// separator runs and trim leading/trailing separators.
//
// Total function: every input yields a valid Text (possibly empty).
//
// Complexity: O(len(raw)).
func Normalize(raw string) Text {
	// Stage 1: strip diacritics. The transform only fails on malformed
	// UTF-8 prefixes; in that case we continue with the raw input — the
	// symbol mapping below turns anything unexpected into separators.
	base, _, err := transform.String(stripMarks, raw)
	if err != nil {
		base = raw
	}

	// Stage 2: map into the alphabet with lazy separator emission.
	// pendingSep is raised instead of writing '_' immediately, and flushed
	// only when the next letter arrives; this collapses runs and trims the
	// trailing separator for free. Nothing is flushed before the first
	// letter, which trims the leading separator.
	var (
		b          strings.Builder
		r          rune
		pendingSep bool
	)
	b.Grow(len(base))
	for _, r = range base {
		switch {
		case r >= 'A' && r <= 'Z':
			// already canonical
		case r >= 'a' && r <= 'z':
			r = unicode.ToUpper(r)
		default:
			if b.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			b.WriteByte(Separator)
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return Text(b.String())
}
