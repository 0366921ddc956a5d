package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a JSON error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// MessageResponse represents a JSON confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	// example: Loan deleted
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
