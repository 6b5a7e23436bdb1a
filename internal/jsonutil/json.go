// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
	"net/http"
)

// ContentType is sent with every JSON response.
const ContentType = "application/json; charset=utf-8"

// EncodePretty writes v as two-space indented JSON followed by a newline.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Respond writes status and v as compact JSON. Headers are already sent
// when encoding fails, so the error is only returned for logging.
func Respond(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
