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

// UserLoansGetter defines the interface that the loan service must implement.
type UserLoansGetter interface {
	GetUserLoans(ctx context.Context, userID string) (toReceive, toPay []models.Loan, err error)
}

// UserLoansResponse represents a user's loans grouped by role
// swagger:model UserLoansResponse
type UserLoansResponse struct {
	// Loans where the user is the creditor
	LoansToReceive []models.Loan `json:"loansToReceive"`

	// Loans where the user is the debtor
	LoansToPay []models.Loan `json:"loansToPay"`
}

// NewUserLoansHandler returns an HTTP handler listing a user's loans.
// @Summary Get a user's loans
// @Description Returns the loans where the user is creditor and debtor, both hydrated
// @Tags loans
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} handlers.UserLoansResponse "Loans grouped by role"
// @Failure 400 {object} handlers.ErrorResponse "Malformed user ID"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /loans/{userId} [get]
func NewUserLoansHandler(svc UserLoansGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		toReceive, toPay, err := svc.GetUserLoans(r.Context(), userID)
		if err != nil {
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

		writeJSON(w, http.StatusOK, UserLoansResponse{
			LoansToReceive: toReceive,
			LoansToPay:     toPay,
		})
	}
}
