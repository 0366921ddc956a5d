package handlers

import (
	"net/http"
)

// HealthResponse represents the health check payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// example: OK
	Status string `json:"status"`

	// Human-readable detail
	// example: Server is running
	Message string `json:"message"`
}

// NewHealthHandler returns the liveness endpoint handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "OK",
			Message: "Server is running",
		})
	}
}

// NewNotFoundHandler returns the JSON fallback for unmatched routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	}
}
