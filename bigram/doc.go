// Package bigram builds and queries smoothed bigram (order-2) statistics
// over the cipher alphabet, serving as the language-plausibility prior for
// cryptanalysis.
//
// 🚀 What is a bigram model here?
//
//	A 27×27 table where row i is the conditional distribution
//	P(next symbol | current symbol i), estimated from a large normalized
//	corpus with additive (Laplace) smoothing. Because every cell is
//	strictly positive by construction, log-scores are always finite —
//	unseen bigrams cost a lot, but never −∞.
//
// ✨ Key guarantees:
//   - every row sums to 1 within floating tolerance,
//   - every cell is strictly greater than 0,
//   - a built Model is immutable and safe to share across any number of
//     concurrent search runs (read-only after Build/Load).
//
// ⚙️ Usage:
//
//	corpus := cipher.Normalize(rawCorpus)
//	model, err := bigram.Build(corpus, bigram.DefaultPseudocount)
//	fitness := model.Score(candidatePlaintext) // Σ log P(b|a), higher is better
//
// Persistence is a flat JSON record {matrix, alphabet, source_length}; Load
// refuses a record built against a different alphabet (ErrAlphabetMismatch).
package bigram
