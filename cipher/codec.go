// Package cipher - the substitution codec.
//
// Encrypt and Decrypt apply a Key symbol-wise to a Text. They do not
// normalize: feeding them anything outside the alphabet is a caller error
// surfaced as ErrInvalidSymbol, never silently repaired.
//
// Invariant: Decrypt(Encrypt(t, k), k) == t for every Text t and valid Key k.
//
// Complexity: O(len(text)) time, one output allocation.
package cipher

// Encrypt substitutes every symbol of t with its image under key: the symbol
// at alphabet index i becomes key.Image(i).
//
// Fails with ErrInvalidSymbol if t contains a symbol outside the alphabet
// (possible when the caller bypassed NewText/Normalize with a raw cast).
func Encrypt(t Text, key Key) (Text, error) {
	return substitute(t, key)
}

// Decrypt applies the inverse permutation of key symbol-wise, undoing
// Encrypt under the same key.
//
// Fails with ErrInvalidSymbol on out-of-alphabet input.
func Decrypt(c Text, key Key) (Text, error) {
	return substitute(c, key.Invert())
}

// substitute maps every symbol through key's image table.
func substitute(t Text, key Key) (Text, error) {
	var (
		out = make([]byte, len(t))
		i   int
		idx int
	)
	for i = 0; i < len(t); i++ {
		idx = SymbolIndex(t[i])
		if idx < 0 {
			return "", ErrInvalidSymbol
		}
		out[i] = key.Image(idx)
	}
	return Text(out), nil
}
