package jsonutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePretty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodePretty(&b, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", b.String())
}

func TestRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Respond(rec, http.StatusTeapot, map[string]bool{"ok": true}))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, "{\"ok\":true}\n", rec.Body.String())
}
