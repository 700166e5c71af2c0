// Package response writes the JSON shapes the storefront consumes.
//
// The admin and checkout pages expect raw payloads (`{"adminExists":true}`,
// a bare product array), so unlike a fully wrapped API there is no
// envelope: JSON writes the value as-is, Message writes `{"message": ...}`.
package response

import (
	"encoding/json"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message writes `{"message": msg}` with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, messageBody{Message: msg})
}

// BadRequest sends a 400 with a message.
func BadRequest(w http.ResponseWriter, msg string) {
	Message(w, http.StatusBadRequest, msg)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "Acesso não autorizado.")
}

// Conflict sends a 409 with a message.
func Conflict(w http.ResponseWriter, msg string) {
	Message(w, http.StatusConflict, msg)
}

// Internal sends a generic 500. Details belong in the log, not the body.
func Internal(w http.ResponseWriter, msg string) {
	Message(w, http.StatusInternalServerError, msg)
}

// Unavailable sends a 503 with a message.
func Unavailable(w http.ResponseWriter, msg string) {
	Message(w, http.StatusServiceUnavailable, msg)
}

// ValidationError sends a 400 with field-level errors.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "Dados inválidos.",
		"errors":  errs,
	})
}
