package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/p2p-loans/internal/models"
	"github.com/sbilibin2017/p2p-loans/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	userOID := primitive.NewObjectID()

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice").
					Return(&models.UserDB{ID: userOID, Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.User{ID: userOID.Hex(), Username: "alice"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Username is required"},
		},
		{
			name:      "missing username",
			inputBody: LoginRequest{Username: "  "},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "  ").
					Return(nil, services.ErrUsernameRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Username is required"},
		},
		{
			name:      "duplicate username conflict",
			inputBody: LoginRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "username already exists"},
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice").
					Return(nil, errors.New("database error"))
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

			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			expectedJSON, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expectedJSON), rr.Body.String())
		})
	}
}
