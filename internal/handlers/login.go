package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

// Loginer defines the interface that the session service must implement.
type Loginer interface {
	Login(ctx context.Context, username string) (*models.UserDB, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`
}

// NewLoginHandler returns an HTTP handler for login-or-create by username.
// @Summary Log in by username
// @Description Returns the user with the given username, creating it on first login
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} models.User "Existing or newly created user"
// @Failure 400 {object} handlers.ErrorResponse "Missing username"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Username is required")
			return
		}

		user, err := svc.Login(r.Context(), req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameRequired):
				writeError(w, http.StatusBadRequest, "Username is required")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusBadRequest, "username already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user.View())
	}
}
