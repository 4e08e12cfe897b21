// Command subcipher - small shared helpers.
package main

import "math/rand"

// rngForSeed mirrors the engine's seed policy: seed 0 selects a fixed
// deterministic default stream.
func rngForSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
