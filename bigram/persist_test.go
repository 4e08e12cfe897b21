// Package bigram_test - persistence round-trips and record validation.
package bigram_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
)

func TestPersist_RoundTrip(t *testing.T) {
	original, err := bigram.Build(cipher.Normalize("ahoj svete jak se mas"), 0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, original.Save(&buf))

	loaded, err := bigram.Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Alphabet(), loaded.Alphabet())
	assert.Equal(t, original.SourceLen(), loaded.SourceLen())

	var row, col int
	for row = 0; row < cipher.AlphabetSize; row++ {
		for col = 0; col < cipher.AlphabetSize; col++ {
			assert.InDelta(t, original.Prob(row, col), loaded.Prob(row, col), 1e-12,
				"cell (%d,%d)", row, col)
		}
	}

	// Scoring must agree too (log table is re-derived on Load).
	sample := cipher.Normalize("jak se mas")
	assert.InDelta(t, original.Score(sample), loaded.Score(sample), 1e-9)
}

func TestPersist_FileRoundTrip(t *testing.T) {
	model, err := bigram.Build(cipher.Normalize("lorem ipsum dolor"), 0.5)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, model.SaveFile(path))

	loaded, err := bigram.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.SourceLen(), loaded.SourceLen())
}

func TestPersist_RecordShape(t *testing.T) {
	model, err := bigram.Build(cipher.Normalize("abc"), 0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.Save(&buf))

	// The wire record is the flat {matrix, alphabet, source_length} shape.
	var rec map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, "matrix")
	assert.Contains(t, rec, "alphabet")
	assert.Contains(t, rec, "source_length")
}

func TestLoad_AlphabetMismatch(t *testing.T) {
	model, err := bigram.Build(cipher.Normalize("abc"), 0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.Save(&buf))

	// Rewrite the alphabet field to simulate a record from another world.
	tampered := strings.Replace(buf.String(), cipher.Alphabet, "abcdefghijklmnopqrstuvwxyz-", 1)
	_, err = bigram.Load(strings.NewReader(tampered))
	assert.ErrorIs(t, err, bigram.ErrAlphabetMismatch)
}

func TestLoad_MalformedRecords(t *testing.T) {
	cases := map[string]string{
		"wrong row count": `{"matrix":[[1]],"alphabet":"` + cipher.Alphabet + `","source_length":1}`,
		"zero cell": `{"matrix":[` + zeroCellMatrixJSON() + `],"alphabet":"` +
			cipher.Alphabet + `","source_length":1}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bigram.Load(strings.NewReader(payload))
			assert.ErrorIs(t, err, bigram.ErrBadModel)
		})
	}
}

// zeroCellMatrixJSON renders a full-size matrix whose first cell is 0
// (illegal: smoothing guarantees strict positivity).
func zeroCellMatrixJSON() string {
	var rows []string

	var row, col int
	for row = 0; row < cipher.AlphabetSize; row++ {
		var cells []string
		for col = 0; col < cipher.AlphabetSize; col++ {
			if row == 0 && col == 0 {
				cells = append(cells, "0")
				continue
			}
			cells = append(cells, "0.037")
		}
		rows = append(rows, "["+strings.Join(cells, ",")+"]")
	}
	return strings.Join(rows, ",")
}
