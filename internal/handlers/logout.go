package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

// Logouter defines the interface that the session service must implement.
type Logouter interface {
	Logout(ctx context.Context, id string) error
}

// NewLogoutHandler returns an HTTP handler for logout with cascade delete.
// @Summary Log out a user
// @Description Deletes every loan referencing the user, then the user record
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse "User and loans removed"
// @Failure 400 {object} handlers.ErrorResponse "Malformed user ID"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/logout/{id} [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.Logout(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUserID):
				writeError(w, http.StatusBadRequest, "Invalid user ID")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User logged out and loans deleted."})
	}
}
