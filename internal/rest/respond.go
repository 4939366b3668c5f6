// Package rest holds the JSON plumbing shared by the HTTP services.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/tennisconnect/server/internal/validate"
)

// ErrorBody is the error payload returned by every endpoint.
type ErrorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondJSON writes payload as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// RespondError writes a JSON error with a user-facing message.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorBody{Message: message})
}

// RespondFieldErrors writes a 422 with per-field validation messages.
func RespondFieldErrors(w http.ResponseWriter, fe validate.FieldErrors) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Message: "validation failed",
		Fields:  fe,
	})
}
