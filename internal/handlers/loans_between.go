package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

// PairLoansGetter defines the interface that the loan service must implement.
type PairLoansGetter interface {
	GetLoansBetween(ctx context.Context, userID, otherUserID string) ([]models.Loan, error)
}

// NewLoansBetweenHandler returns an HTTP handler listing the loans between two users.
// @Summary Get loans between two users
// @Description Returns all loans between the pair in either direction, hydrated
// @Tags loans
// @Produce json
// @Param userId path string true "User ID"
// @Param otherUserId path string true "Other user ID"
// @Success 200 {array} models.Loan "Loans between the pair"
// @Failure 400 {object} handlers.ErrorResponse "Malformed user IDs"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /loans/{userId}/{otherUserId} [get]
func NewLoansBetweenHandler(svc PairLoansGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		otherUserID := chi.URLParam(r, "otherUserId")

		loans, err := svc.GetLoansBetween(r.Context(), userID, otherUserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUserIDs):
				writeError(w, http.StatusBadRequest, "Invalid user IDs")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrOtherUserNotFound):
				writeError(w, http.StatusNotFound, "Other user not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, loans)
	}
}
