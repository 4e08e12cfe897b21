// Command subcipher - API handler tests against an in-memory router.
package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
)

// newTestRouter builds the API around a small in-memory model.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	model, err := bigram.Build(cipher.Normalize(strings.Repeat("ahoj svete jak se mas ", 50)), 0.5)
	require.NoError(t, err)
	return newRouter(model)
}

// doJSON posts payload to path and decodes the JSON response.
func doJSON(t *testing.T, h http.Handler, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestAPI_Health(t *testing.T) {
	h := newTestRouter(t)
	code, out := doJSON(t, h, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", out["status"])
}

func TestAPI_EncryptDecryptRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	code, enc := doJSON(t, h, http.MethodPost, "/api/encrypt", map[string]any{
		"text": "Ahoj světe, jak se máš?",
		"seed": 42,
	})
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, enc["ciphertext"])
	require.NotEmpty(t, enc["key"])
	assert.Equal(t, "AHOJ_SVETE_JAK_SE_MAS", enc["normalized"])

	code, dec := doJSON(t, h, http.MethodPost, "/api/decrypt", map[string]any{
		"ciphertext": enc["ciphertext"],
		"key":        enc["key"],
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, enc["normalized"], dec["plaintext"])
}

func TestAPI_EncryptRejectsBadKey(t *testing.T) {
	h := newTestRouter(t)
	code, out := doJSON(t, h, http.MethodPost, "/api/encrypt", map[string]any{
		"text": "ahoj",
		"key":  "not a key",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out, "error")
}

func TestAPI_CrackReturnsHistory(t *testing.T) {
	h := newTestRouter(t)

	// Encrypt a sample through the API, then crack it with a short run.
	code, enc := doJSON(t, h, http.MethodPost, "/api/encrypt", map[string]any{
		"text": strings.Repeat("ahoj svete jak se mas ", 10),
		"seed": 7,
	})
	require.Equal(t, http.StatusOK, code)

	code, out := doJSON(t, h, http.MethodPost, "/api/crack", map[string]any{
		"ciphertext": enc["ciphertext"],
		"iterations": 200,
		"seed":       1,
	})
	require.Equal(t, http.StatusOK, code)

	history, ok := out["history"].([]any)
	require.True(t, ok, "history must be a plain array")
	assert.Len(t, history, 201)
	assert.NotEmpty(t, out["key"])
	assert.Contains(t, out, "best_fitness")
}

func TestAPI_CrackRejectsForeignCiphertext(t *testing.T) {
	h := newTestRouter(t)
	code, out := doJSON(t, h, http.MethodPost, "/api/crack", map[string]any{
		"ciphertext": "lowercase is not in the alphabet",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out, "error")
}
