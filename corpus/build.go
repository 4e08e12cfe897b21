// Package corpus - convenience bridge from raw text to a reference model.
package corpus

import (
	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
)

// BuildModel normalizes raw into the closed alphabet and builds a smoothed
// bigram model from it. pseudocount ≤ 0 falls back to
// bigram.DefaultPseudocount.
//
// This is the canonical corpus → reference-model path; using it (rather
// than normalizing by hand) keeps corpus preprocessing byte-identical to
// message preprocessing.
func BuildModel(raw string, pseudocount float64) (*bigram.Model, error) {
	if pseudocount <= 0 {
		pseudocount = bigram.DefaultPseudocount
	}
	return bigram.Build(cipher.Normalize(raw), pseudocount)
}
