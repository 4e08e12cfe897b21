// Package metropolis recovers substitution-cipher keys from ciphertext
// alone, using a Metropolis–Hastings / simulated-annealing search over
// key-space guided by a bigram language model.
//
// 🚀 How does it work?
//
//	Key-space has 27! elements — exhaustive search is hopeless. Instead the
//	engine runs a Markov chain: propose a random two-position swap of the
//	current key, score the candidate decryption under the reference bigram
//	model, and
//	  • accept improvements unconditionally (greedy hill-climbing),
//	  • accept deteriorations with probability exp(Δ/T) (escape hatches
//	    out of local optima while the temperature T is still high).
//	A linear cooling schedule T = T0·(1 − iter/max) turns the chain greedy
//	by the end of the run. The best key ever visited is tracked separately,
//	because the final chain state is not guaranteed to be the best one.
//
// ✨ Key guarantees:
//   - deterministic: same seed ⇒ identical trajectory (seed 0 selects a
//     fixed default stream, exactly like a zero seed elsewhere here),
//   - History has exactly Iterations+1 entries (entry 0 = initial fitness),
//   - BestFitness is non-decreasing over the run,
//   - temperature is non-increasing and always strictly positive,
//   - no shared mutable state: chains only read the immutable Model, so
//     any number of runs may execute concurrently.
//
// ⚙️ Usage:
//
//	opts := metropolis.DefaultOptions() // 20000 iterations, T0 = 2.0
//	opts.Seed = 42
//	res, err := metropolis.Search(ciphertext, model, opts)
//	fmt.Println(res.Key, res.Plaintext, res.BestFitness)
//
// SearchParallel runs several independent chains with derived seeds and
// keeps the best result — short or atypical ciphertexts often need it.
//
// Statistical caveat: ciphertext shorter than two symbols carries no bigram
// signal, so every key scores 0 and the chain is an unbiased random walk.
// That is expected model behavior, not an error.
package metropolis
