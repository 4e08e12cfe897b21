// Package subcipher breaks monoalphabetic substitution ciphers over a
// fixed 27-symbol alphabet (A-Z plus '_' as the word separator) using a
// smoothed bigram language model and a Metropolis-Hastings /
// simulated-annealing search over key-space.
//
// 🚀 What is subcipher?
//
//	A small, deterministic-by-default cryptanalysis toolkit built from
//	four focused packages:
//		• cipher/     — the 27-symbol alphabet, permutation keys, text
//		  normalization (diacritics stripping) and encrypt/decrypt
//		• bigram/     — additive-smoothed bigram conditional model,
//		  log-likelihood scoring and JSON persistence
//		• metropolis/ — single-chain annealing search plus parallel
//		  multi-chain restarts with derived seeds
//		• corpus/     — reference-corpus acquisition (MediaWiki fetch,
//		  HTML stripping) and model building
//
// ✨ Why choose subcipher?
//
//   - Reproducible – every stochastic path is seedable; seed 0 means a
//     fixed default stream, never wall-clock entropy
//   - Honest errors – package-level sentinels, matched with errors.Is;
//     no panics, no logging inside the library
//   - Observable – full per-iteration fitness history for plotting and
//     convergence diagnostics (plot/ renders it as ECharts HTML)
//
// The cmd/subcipher command wraps everything into a CLI: build a model
// from a corpus, encrypt/decrypt under explicit keys, crack single
// files or whole directories, and serve a JSON API demo.
//
// Quick example:
//
//	model, _ := bigram.Build(cipher.Normalize(corpusText), bigram.DefaultPseudocount)
//	res, _ := metropolis.Search(ciphertext, model, metropolis.DefaultOptions())
//	fmt.Println(res.Plaintext)
//
//	go get github.com/vdlabac/subcipher
package subcipher
