package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: models.LoginRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: models.TokenResponse{Token: "JWT_TOKEN"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: errorBody{Status: http.StatusBadRequest, Message: "invalid request body"},
		},
		{
			name:         "missing password",
			inputBody:    map[string]string{"username": "john"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: errorBody{Status: http.StatusBadRequest, Message: "password is required"},
		},
		{
			name: "wrong credentials",
			inputBody: models.LoginRequest{
				Username: "wronguser",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wronguser", "wrongpass").
					Return("", apperrors.Unauthorized("Invalid login credentials"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: errorBody{Status: http.StatusUnauthorized, Message: "Invalid login credentials"},
		},
		{
			name: "internal error",
			inputBody: models.LoginRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return("", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: errorBody{Status: http.StatusInternalServerError, Message: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := serve(t, http.MethodPost, "/login", "/login", NewLoginHandler(mockSvc), tt.inputBody, nil)

			assert.Equal(t, tt.expectedCode, rr.Code)
			switch want := tt.expectedBody.(type) {
			case models.TokenResponse:
				assert.Equal(t, want, decodeBody[models.TokenResponse](t, rr))
			case errorBody:
				assert.Equal(t, want, decodeBody[errorBody](t, rr))
			}
		})
	}
}
