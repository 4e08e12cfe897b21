// Package cipher - the substitution key: a validated alphabet permutation.
//
// A Key maps the i-th alphabet symbol to its cipher image images[i]. Keys are
// immutable values: every operation returns a fresh Key, so a key held by one
// search chain can never be mutated by another.
//
// Design:
//   - Fixed-size [AlphabetSize]byte array, comparable with ==; no heap
//     indirection and no shared mutable ownership.
//   - Construction paths are exactly three: NewRandomKey (unbiased shuffle),
//     ParseKey (validated string), and Swap/Invert on an existing key —
//     the latter preserve the permutation invariant by construction, so
//     they never re-validate.
//   - Randomness is explicit: NewRandomKey takes a *rand.Rand; nil selects
//     the deterministic default stream (seed policy shared with the
//     metropolis package).
//
// Complexity: all operations are O(AlphabetSize) time, O(1) extra space.
package cipher

import "math/rand"

// defaultKeySeed is the fixed seed behind NewRandomKey(nil). Arbitrary but
// stable, so a nil source keeps producing the same reproducible key stream.
const defaultKeySeed int64 = 1

// Key is a bijection Alphabet → Alphabet. The zero value is NOT a valid key;
// obtain keys via IdentityKey, NewRandomKey, ParseKey, Swap or Invert.
type Key struct {
	images [AlphabetSize]byte
}

// IdentityKey returns the key mapping every symbol to itself.
func IdentityKey() Key {
	var k Key
	copy(k.images[:], Alphabet)
	return k
}

// NewRandomKey returns a uniformly random permutation of the alphabet,
// produced by an in-place Fisher–Yates shuffle over rng. A nil rng selects
// a deterministic default stream so callers without an opinion still get
// reproducible results.
//
// Complexity: O(AlphabetSize).
func NewRandomKey(rng *rand.Rand) Key {
	var (
		k = IdentityKey()
		r = rng
		i int
		j int
	)
	if r == nil {
		r = rand.New(rand.NewSource(defaultKeySeed))
	}
	for i = AlphabetSize - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		k.images[i], k.images[j] = k.images[j], k.images[i]
	}
	return k
}

// ParseKey parses the serialized form produced by Key.String: the
// concatenation of the key's images in alphabet order. It fails with
// ErrInvalidKey unless s is exactly a permutation of the alphabet
// (wrong length, repeated symbol, or foreign symbol all reject).
//
// Round-trip identity: ParseKey(k.String()) == k for every valid k.
//
// Complexity: O(AlphabetSize).
func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) != AlphabetSize {
		return Key{}, ErrInvalidKey
	}

	var (
		seen [AlphabetSize]bool
		i    int
		idx  int
	)
	for i = 0; i < AlphabetSize; i++ {
		idx = SymbolIndex(s[i])
		if idx < 0 {
			return Key{}, ErrInvalidKey // foreign symbol
		}
		if seen[idx] {
			return Key{}, ErrInvalidKey // repeated symbol
		}
		seen[idx] = true
		k.images[i] = s[i]
	}
	return k, nil
}

// String serializes the key as the concatenation of its images in alphabet
// order. The inverse of ParseKey.
func (k Key) String() string { return string(k.images[:]) }

// Image returns the cipher image of the symbol at alphabet index i.
// The caller must keep i within [0..AlphabetSize-1]; the search engine and
// codec only ever produce in-range indices.
func (k Key) Image(i int) byte { return k.images[i] }

// Invert returns the inverse permutation: if k maps a→b, the result maps
// b→a. Used by Decrypt.
//
// Complexity: O(AlphabetSize).
func (k Key) Invert() Key {
	var (
		inv Key
		i   int
	)
	for i = 0; i < AlphabetSize; i++ {
		inv.images[SymbolIndex(k.images[i])] = Alphabet[i]
	}
	return inv
}

// Swap returns a new key equal to k except the images at positions i and j
// are exchanged. This is the sole mutation primitive used by the search
// engine; it preserves the permutation invariant by construction, so the
// result needs no validation. i == j is legal and yields an identical copy.
//
// Returns ErrInvalidPosition when either position is outside
// [0..AlphabetSize-1].
//
// Complexity: O(AlphabetSize) (array copy).
func (k Key) Swap(i, j int) (Key, error) {
	if i < 0 || i >= AlphabetSize || j < 0 || j >= AlphabetSize {
		return Key{}, ErrInvalidPosition
	}
	out := k
	out.images[i], out.images[j] = out.images[j], out.images[i]
	return out, nil
}
