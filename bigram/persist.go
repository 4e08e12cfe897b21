// Package bigram - model persistence.
//
// The on-disk format is a flat JSON record {matrix, alphabet, source_length}
// mirroring what the rest of the toolchain (CLI, web demo) exchanges. Load
// re-derives the log table and re-checks well-formedness, so a model read
// from disk carries the same guarantees as a freshly built one.
package bigram

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/vdlabac/subcipher/cipher"
)

// record is the wire shape of a persisted model.
type record struct {
	Matrix       [][]float64 `json:"matrix"`
	Alphabet     string      `json:"alphabet"`
	SourceLength int         `json:"source_length"`
}

// Save writes the model to w as a JSON record.
func (m *Model) Save(w io.Writer) error {
	rec := record{
		Matrix:       make([][]float64, cipher.AlphabetSize),
		Alphabet:     m.alphabet,
		SourceLength: m.sourceLen,
	}

	var row int
	for row = 0; row < cipher.AlphabetSize; row++ {
		rec.Matrix[row] = append([]float64(nil), m.prob[row][:]...)
	}

	enc := json.NewEncoder(w)
	return enc.Encode(rec)
}

// SaveFile writes the model to path, creating or truncating the file.
func (m *Model) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = m.Save(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load reads a JSON model record from r.
//
// Fails with ErrAlphabetMismatch when the record was built against a
// different alphabet than cipher.Alphabet, and with ErrBadModel when the
// matrix shape is wrong or any cell is non-finite or not strictly positive.
func Load(r io.Reader) (*Model, error) {
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, err
	}
	if rec.Alphabet != cipher.Alphabet {
		return nil, ErrAlphabetMismatch
	}
	if len(rec.Matrix) != cipher.AlphabetSize {
		return nil, ErrBadModel
	}

	m := &Model{
		alphabet:  rec.Alphabet,
		sourceLen: rec.SourceLength,
	}

	var (
		row, col int
		v        float64
	)
	for row = 0; row < cipher.AlphabetSize; row++ {
		if len(rec.Matrix[row]) != cipher.AlphabetSize {
			return nil, ErrBadModel
		}
		for col = 0; col < cipher.AlphabetSize; col++ {
			v = rec.Matrix[row][col]
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return nil, ErrBadModel
			}
			m.prob[row][col] = v
		}
	}

	// Re-normalize defensively and derive logs; a well-formed record is a
	// fixed point of this step, and a slightly drifted one is repaired.
	m.finalize()
	return m, nil
}

// LoadFile reads a model record from path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
