package server

import (
	"bytes"
	"net/http"

	"github.com/goccy/go-json"
)

// writeJSON encodes v and writes it as a JSON response. Nothing is written
// when encoding fails.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// writeError writes a standardised JSON error response
func writeError(w http.ResponseWriter, status int, msg, requestID string) {
	body := map[string]string{"error": msg}
	if requestID != "" {
		body["request_id"] = requestID
	}
	_ = writeJSON(w, status, body)
}
