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

// LoanCreator defines the interface that the loan service must implement.
type LoanCreator interface {
	Create(ctx context.Context, creditorID, debtorID string, amount float64, purpose string) (*models.Loan, error)
}

// CreateLoanRequest represents the JSON body for creating a loan
// swagger:model CreateLoanRequest
type CreateLoanRequest struct {
	// Creditor user ID (the person owed money)
	// required: true
	// example: 64f1b2c3d4e5f60718293a4b
	PersonToBePaidID string `json:"personToBePaidId"`

	// Debtor user ID (the person who owes)
	// required: true
	// example: 64f1b2c3d4e5f60718293a4c
	PersonToPayID string `json:"personToPayId"`

	// Loan amount, must be greater than 0
	// required: true
	// example: 50
	Amount float64 `json:"amount"`

	// What the loan is for
	// required: true
	// example: lunch
	Purpose string `json:"purpose"`
}

// NewCreateLoanHandler returns an HTTP handler that records a new loan.
// @Summary Create a loan
// @Description Records a loan between two existing users and returns it with both users resolved
// @Tags loans
// @Accept json
// @Produce json
// @Param createLoanRequest body handlers.CreateLoanRequest true "Loan to create"
// @Success 201 {object} models.Loan "Created loan"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Referenced user not found"
// @Router /loans [post]
func NewCreateLoanHandler(svc LoanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateLoanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "All fields are required")
			return
		}

		loan, err := svc.Create(r.Context(), req.PersonToBePaidID, req.PersonToPayID, req.Amount, req.Purpose)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLoanFieldsRequired):
				writeError(w, http.StatusBadRequest, "All fields are required")
			case errors.Is(err, services.ErrInvalidUserIDs):
				writeError(w, http.StatusBadRequest, "Invalid user IDs")
			case errors.Is(err, services.ErrSelfLoan):
				writeError(w, http.StatusBadRequest, "Cannot create loan to yourself")
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Amount must be greater than 0")
			case errors.Is(err, services.ErrPurposeTooLong):
				writeError(w, http.StatusBadRequest, "Purpose cannot exceed 200 characters")
			case errors.Is(err, services.ErrCreditorNotFound):
				writeError(w, http.StatusNotFound, "Person to be paid not found")
			case errors.Is(err, services.ErrDebtorNotFound):
				writeError(w, http.StatusNotFound, "Person to pay not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, loan)
	}
}
