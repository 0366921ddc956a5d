package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

// LoanDeleter defines the interface that the loan service must implement.
type LoanDeleter interface {
	Delete(ctx context.Context, loanID string) error
}

// NewDeleteLoanHandler returns an HTTP handler that removes a loan.
// @Summary Delete a loan
// @Description Removes a loan by ID. No cascade.
// @Tags loans
// @Produce json
// @Param loanId path string true "Loan ID"
// @Success 200 {object} handlers.MessageResponse "Loan removed"
// @Failure 400 {object} handlers.ErrorResponse "Malformed loan ID"
// @Failure 404 {object} handlers.ErrorResponse "Loan not found"
// @Router /loans/{loanId} [delete]
func NewDeleteLoanHandler(svc LoanDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := chi.URLParam(r, "loanId")

		if err := svc.Delete(r.Context(), loanID); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidLoanID):
				writeError(w, http.StatusBadRequest, "Invalid loan ID")
			case errors.Is(err, services.ErrLoanNotFound):
				writeError(w, http.StatusNotFound, "Loan not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Loan deleted"})
	}
}
