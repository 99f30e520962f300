// Package httputil holds the JSON response and request helpers shared by
// the API handlers, so every endpoint writes the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gyulist/gyulist/internal/api"
)

// MaxBodyBytes caps request bodies read by Decode.
const MaxBodyBytes = 1 << 20

// JSON writes data with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, api.Error{Error: message})
}

// Validation writes a 400 with per-field messages.
func Validation(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, api.ValidationError{Error: "validation error", FieldErrors: fields})
}

// Decode reads a JSON body into dst. Unknown fields are ignored, an empty
// or malformed body is an error.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	return nil
}
