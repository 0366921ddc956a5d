package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

func TestUpdateLoanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoanUpdater(ctrl)

	loanID := primitive.NewObjectID().Hex()

	updated := &models.Loan{ID: loanID, Amount: 120, Purpose: "rent"}

	tests := []struct {
		name         string
		loanID       string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "add increases the amount",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{Action: "add", Amount: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "add", float64(20)).
					Return(updated, false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: updated,
		},
		{
			name:      "full payment reports settlement",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{Action: "paid", Amount: 120},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "paid", float64(120)).
					Return(nil, true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &MessageResponse{Message: "Loan fully paid and removed"},
		},
		{
			name:         "invalid JSON",
			loanID:       loanID,
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Action and amount are required"},
		},
		{
			name:      "malformed loan id",
			loanID:    "bogus",
			inputBody: UpdateLoanRequest{Action: "add", Amount: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), "bogus", "add", float64(20)).
					Return(nil, false, services.ErrInvalidLoanID)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid loan ID"},
		},
		{
			name:      "missing action and amount",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "", float64(0)).
					Return(nil, false, services.ErrActionAmountRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Action and amount are required"},
		},
		{
			name:      "unknown action",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{Action: "remove", Amount: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "remove", float64(20)).
					Return(nil, false, services.ErrInvalidAction)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: `Action must be "add" or "paid"`},
		},
		{
			name:      "negative amount",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{Action: "paid", Amount: -5},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "paid", float64(-5)).
					Return(nil, false, services.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Amount must be greater than 0"},
		},
		{
			name:      "loan not found",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{Action: "paid", Amount: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "paid", float64(20)).
					Return(nil, false, services.ErrLoanNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Loan not found"},
		},
		{
			name:      "internal error",
			loanID:    loanID,
			inputBody: UpdateLoanRequest{Action: "paid", Amount: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), loanID, "paid", float64(20)).
					Return(nil, false, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			r := chi.NewRouter()
			r.Patch("/loans/{loanId}", NewUpdateLoanHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPatch, "/loans/"+tt.loanID, bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			expectedJSON, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expectedJSON), rr.Body.String())
		})
	}
}
