// Package httpjson holds the JSON request/response helpers shared by the API
// feature handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxBodyBytes bounds JSON request bodies. Portfolio payloads are small;
// images go through the upload endpoint, not JSON.
const maxBodyBytes = 1 << 20

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body: {"error": "..."}.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}

// Decode reads the request body into v, rejecting unknown fields and
// oversized bodies.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// Trailing garbage after the JSON value is a malformed request.
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
