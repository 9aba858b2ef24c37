package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// newSessionID generates a unique session identifier.
func newSessionID() string {
	return "ses_" + uuid.New().String()[:8]
}

// apiError is the JSON shape of an error response.
type apiError struct {
	Error string `json:"error"`
}

// respondJSON writes data with the given status.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, apiError{Error: msg})
}
