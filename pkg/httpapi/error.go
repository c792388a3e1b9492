package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope standardizes JSON error responses: a human-readable message
// plus the underlying error detail when one exists.
type ErrorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, err error) error {
	envelope := &ErrorEnvelope{Message: message}
	if err != nil {
		envelope.Error = err.Error()
	}
	return WriteJSON(w, status, envelope)
}

// WriteMessage writes a bare `{message: ...}` success body.
func WriteMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, map[string]string{"message": message})
}
