package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the generic {"message": ...} body used for simple
// confirmations and errors.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body returned when a bulk import is
// rejected: the message plus one entry per failing row.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a MessageResponse with the given status code.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}
