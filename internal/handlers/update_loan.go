package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/p2p-loans/internal/logger"
	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

// LoanUpdater defines the interface that the loan service must implement.
type LoanUpdater interface {
	Update(ctx context.Context, loanID, action string, amount float64) (loan *models.Loan, settled bool, err error)
}

// UpdateLoanRequest represents the JSON body for adjusting a loan amount
// swagger:model UpdateLoanRequest
type UpdateLoanRequest struct {
	// Either "add" (increase the amount) or "paid" (decrease it)
	// required: true
	// example: paid
	Action string `json:"action"`

	// Adjustment amount, must be greater than 0
	// required: true
	// example: 30
	Amount float64 `json:"amount"`
}

// NewUpdateLoanHandler returns an HTTP handler that adjusts or settles a loan.
// A payment covering the full amount deletes the loan and reports settlement.
// @Summary Update a loan amount
// @Description Applies an add or paid action; a payment reaching zero deletes the loan
// @Tags loans
// @Accept json
// @Produce json
// @Param loanId path string true "Loan ID"
// @Param updateLoanRequest body handlers.UpdateLoanRequest true "Adjustment"
// @Success 200 {object} models.Loan "Updated loan, or a settlement message"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Loan not found"
// @Router /loans/{loanId} [patch]
func NewUpdateLoanHandler(svc LoanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loanID := chi.URLParam(r, "loanId")

		var req UpdateLoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Action and amount are required")
			return
		}

		loan, settled, err := svc.Update(r.Context(), loanID, req.Action, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidLoanID):
				writeError(w, http.StatusBadRequest, "Invalid loan ID")
			case errors.Is(err, services.ErrActionAmountRequired):
				writeError(w, http.StatusBadRequest, "Action and amount are required")
			case errors.Is(err, services.ErrInvalidAction):
				writeError(w, http.StatusBadRequest, `Action must be "add" or "paid"`)
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Amount must be greater than 0")
			case errors.Is(err, services.ErrLoanNotFound):
				writeError(w, http.StatusNotFound, "Loan not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		if settled {
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Loan fully paid and removed"})
			return
		}
		writeJSON(w, http.StatusOK, loan)
	}
}
