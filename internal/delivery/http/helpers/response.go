package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the `{"message": ...}` body used by most endpoints.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONMessage writes a MessageResponse with the given status and message.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteJSONError is WriteJSONMessage for failures. Callers pass a safe,
// client-facing message; internals are logged, never written here.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONMessage(w, statusCode, message)
}
