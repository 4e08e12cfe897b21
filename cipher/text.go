// Package cipher - normalized text: a string restricted to the alphabet.
//
// Text is the value type all downstream components (codec, bigram scorer,
// search engine) operate on. It is produced either by Normalize (total) or
// by NewText (validated), so downstream code can assume well-formedness and
// never re-checks symbol membership in hot loops.
package cipher

// Text is a sequence of symbols drawn exclusively from the alphabet.
// Construct via Normalize or NewText; converting an arbitrary string with
// Text(s) bypasses validation and shifts the burden onto the codec, which
// still rejects foreign symbols with ErrInvalidSymbol.
type Text string

// NewText validates that s contains only alphabet symbols and wraps it as
// Text. Fails with ErrInvalidSymbol on the first foreign byte.
//
// Complexity: O(len(s)).
func NewText(s string) (Text, error) {
	var i int
	for i = 0; i < len(s); i++ {
		if !isSymbol(s[i]) {
			return "", ErrInvalidSymbol
		}
	}
	return Text(s), nil
}

// String returns the underlying string.
func (t Text) String() string { return string(t) }

// Accuracy returns the character-level agreement of a and b in [0,1]:
// the number of positions where both texts carry the same symbol, divided
// by the length of the longer text. Two empty texts agree perfectly (1).
//
// This is the quality/confidence signal for search results when ground
// truth is available — poor convergence is not an error, it shows up here.
//
// Complexity: O(min(len(a), len(b))).
func Accuracy(a, b Text) float64 {
	var (
		n     = len(a)
		m     = len(b)
		limit = n
		match int
		i     int
	)
	if m < limit {
		limit = m
	}
	if n == 0 && m == 0 {
		return 1
	}
	for i = 0; i < limit; i++ {
		if a[i] == b[i] {
			match++
		}
	}
	longer := n
	if m > longer {
		longer = m
	}
	return float64(match) / float64(longer)
}
