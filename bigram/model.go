// Package bigram - model construction and scoring.
//
// Design:
//   - Build is the only constructor besides Load; a Model is never mutated
//     afterwards, so concurrent readers need no locking.
//   - Score is the hot path of the whole module (called once per search
//     proposal); it is allocation-free and works on raw bytes.
//   - The log of every cell is precomputed at build time so Score performs
//     table lookups only, no math.Log per symbol pair.
//
// Complexity:
//   - Build: O(len(corpus) + AlphabetSize²).
//   - Score: O(len(text)).
package bigram

import (
	"math"
	"sort"

	"github.com/vdlabac/subcipher/cipher"
)

// DefaultPseudocount is the additive-smoothing constant used when callers
// have no opinion. Small against corpus bigram counts in the hundreds of
// thousands, yet large enough to keep unseen-bigram penalties bounded.
const DefaultPseudocount = 0.5

// Model is an immutable reference bigram model: a row-stochastic 27×27
// conditional matrix plus provenance metadata. Share freely across
// concurrent search runs; never mutate after Build/Load.
type Model struct {
	prob      [cipher.AlphabetSize][cipher.AlphabetSize]float64 // P(col|row)
	logProb   [cipher.AlphabetSize][cipher.AlphabetSize]float64 // log P, precomputed
	alphabet  string
	sourceLen int
}

// Build counts every adjacent symbol pair of corpus into a 27×27 table,
// adds pseudocount to every cell (Laplace smoothing — no zero probability,
// hence no −∞ log-score for unseen bigrams), then row-normalizes.
//
// Fails with ErrBadPseudocount unless pseudocount > 0; with
// cipher.ErrInvalidSymbol when corpus contains a foreign byte (possible
// only through a raw Text cast).
func Build(corpus cipher.Text, pseudocount float64) (*Model, error) {
	if !(pseudocount > 0) { // also rejects NaN
		return nil, ErrBadPseudocount
	}

	m := &Model{
		alphabet:  cipher.Alphabet,
		sourceLen: len(corpus),
	}

	// Stage 1: smoothing baseline.
	var row, col int
	for row = 0; row < cipher.AlphabetSize; row++ {
		for col = 0; col < cipher.AlphabetSize; col++ {
			m.prob[row][col] = pseudocount
		}
	}

	// Stage 2: count adjacent pairs.
	var (
		i    int
		prev = -1
		cur  int
	)
	for i = 0; i < len(corpus); i++ {
		cur = cipher.SymbolIndex(corpus[i])
		if cur < 0 {
			return nil, cipher.ErrInvalidSymbol
		}
		if prev >= 0 {
			m.prob[prev][cur]++
		}
		prev = cur
	}

	// Stage 3: row-normalize and precompute logs.
	m.finalize()
	return m, nil
}

// finalize row-normalizes prob and fills logProb. Every row sum is strictly
// positive (smoothing ran first), so no division guard is needed.
func (m *Model) finalize() {
	var (
		row, col int
		sum      float64
	)
	for row = 0; row < cipher.AlphabetSize; row++ {
		sum = 0
		for col = 0; col < cipher.AlphabetSize; col++ {
			sum += m.prob[row][col]
		}
		for col = 0; col < cipher.AlphabetSize; col++ {
			m.prob[row][col] /= sum
			m.logProb[row][col] = math.Log(m.prob[row][col])
		}
	}
}

// Score returns the log-likelihood of t under the model: the sum over every
// adjacent symbol pair (a,b) of log P(b|a). Finite by construction of the
// matrix. Texts shorter than two symbols carry no bigrams and score 0.
//
// Foreign bytes (possible only via a raw Text cast) are skipped rather than
// scored; validated Text never contains any.
//
// Complexity: O(len(t)), allocation-free.
func (m *Model) Score(t cipher.Text) float64 {
	var (
		score float64
		prev  = -1
		cur   int
		i     int
	)
	for i = 0; i < len(t); i++ {
		cur = cipher.SymbolIndex(t[i])
		if cur < 0 {
			prev = -1
			continue
		}
		if prev >= 0 {
			score += m.logProb[prev][cur]
		}
		prev = cur
	}
	return score
}

// Prob returns P(next=col | current=row). Indices are alphabet indices;
// out-of-range indices return 0 rather than panicking.
func (m *Model) Prob(row, col int) float64 {
	if row < 0 || row >= cipher.AlphabetSize || col < 0 || col >= cipher.AlphabetSize {
		return 0
	}
	return m.prob[row][col]
}

// Alphabet returns the alphabet the model was built against.
func (m *Model) Alphabet() string { return m.alphabet }

// SourceLen returns the length of the normalized corpus the model was built
// from (metadata only; it does not affect scoring).
func (m *Model) SourceLen() int { return m.sourceLen }

// BigramProb is one (first symbol, second symbol, probability) entry, as
// reported by TopBigrams.
type BigramProb struct {
	First  byte
	Second byte
	Prob   float64
}

// TopBigrams returns the n most probable bigrams across the whole matrix in
// descending probability order — a diagnostic view of what the corpus
// taught the model. n larger than the table clamps to the table size.
//
// Complexity: O(AlphabetSize² log AlphabetSize²).
func (m *Model) TopBigrams(n int) []BigramProb {
	all := make([]BigramProb, 0, cipher.AlphabetSize*cipher.AlphabetSize)

	var row, col int
	for row = 0; row < cipher.AlphabetSize; row++ {
		for col = 0; col < cipher.AlphabetSize; col++ {
			all = append(all, BigramProb{
				First:  cipher.Alphabet[row],
				Second: cipher.Alphabet[col],
				Prob:   m.prob[row][col],
			})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Prob > all[j].Prob })

	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}
