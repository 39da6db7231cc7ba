package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/response"
	"github.com/stretchr/testify/assert"
)

func TestListCompaniesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompanyServicer(ctrl)
	h := NewListCompaniesHandler(mockSvc)

	ten := 10
	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "filters parsed",
			target: "/companies?search=ac&min_employees=10&max_employees=abc",
			mockSetup: func() {
				mockSvc.EXPECT().
					List(gomock.Any(), models.CompanyFilter{Search: "ac", MinEmployees: &ten}).
					Return([]models.CompanySummary{{Handle: "acme", Name: "Acme"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "bad bounds",
			target: "/companies?min_employees=10&max_employees=1",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Validation("min_employees must be less than max_employees"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "internal error",
			target: "/companies",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), models.CompanyFilter{}).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodGet, "/companies", tt.target, h, nil, nil)
			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusOK {
				got := decodeBody[models.CompaniesResponse](t, rr)
				assert.Equal(t, []models.CompanySummary{{Handle: "acme", Name: "Acme"}}, got.Companies)
			}
			if rr.Code == http.StatusInternalServerError {
				got := decodeBody[errorBody](t, rr)
				assert.Equal(t, "Internal server error", got.Message)
			}
		})
	}
}

func TestCreateCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompanyServicer(ctrl)
	h := NewCreateCompanyHandler(mockSvc)

	t.Run("created", func(t *testing.T) {
		company := models.Company{Handle: "acme", Name: "Acme"}
		mockSvc.EXPECT().Create(gomock.Any(), company).Return(&company, nil)

		rr := serve(t, http.MethodPost, "/companies", "/companies", h,
			map[string]any{"handle": "acme", "name": "Acme", "_token": "ignored"}, nil)
		assert.Equal(t, http.StatusCreated, rr.Code)
		got := decodeBody[models.CompanyResponse](t, rr)
		assert.Equal(t, "acme", got.Company.Handle)
	})

	t.Run("schema violation", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/companies", "/companies", h,
			map[string]any{"handle": "acme", "num_employees": -1}, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		got := decodeBody[errorBody](t, rr)
		assert.Contains(t, got.Message, "name is required")
		assert.Contains(t, got.Message, "num_employees")
	})

	t.Run("uppercase handle", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/companies", "/companies", h,
			map[string]any{"handle": "ACME", "name": "Acme"}, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rr := serve(t, http.MethodPost, "/companies", "/companies", h, "{invalid json}", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid request body", decodeBody[errorBody](t, rr).Message)
	})

	t.Run("duplicate answers 401", func(t *testing.T) {
		mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.Conflict("A company's name and handle must be unique"))

		rr := serve(t, http.MethodPost, "/companies", "/companies", h,
			map[string]any{"handle": "acme", "name": "Acme"}, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, errorBody{Status: 401, Message: "A company's name and handle must be unique"}, decodeBody[errorBody](t, rr))
	})
}

func TestGetCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompanyServicer(ctrl)
	h := NewGetCompanyHandler(mockSvc)

	detail := &models.CompanyDetail{Company: models.Company{Handle: "acme", Name: "Acme"}, Jobs: []models.Job{{ID: 1}}}
	mockSvc.EXPECT().Get(gomock.Any(), "acme").Return(detail, nil)

	rr := serve(t, http.MethodGet, "/companies/{handle}", "/companies/acme", h, nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[models.CompanyDetailResponse](t, rr)
	assert.Len(t, got.Company.Jobs, 1)

	mockSvc.EXPECT().Get(gomock.Any(), "nope").Return(nil, apperrors.NotFound("No company found with handle nope"))

	rr = serve(t, http.MethodGet, "/companies/{handle}", "/companies/nope", h, nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, errorBody{Status: 404, Message: "No company found with handle nope"}, decodeBody[errorBody](t, rr))
}

func TestUpdateCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompanyServicer(ctrl)
	h := NewUpdateCompanyHandler(mockSvc)

	mockSvc.EXPECT().Update(gomock.Any(), "acme", map[string]any{"name": "New"}).
		Return(&models.Company{Handle: "acme", Name: "New"}, nil)

	rr := serve(t, http.MethodPatch, "/companies/{handle}", "/companies/acme", h,
		map[string]any{"name": "New", "handle": "ignored"}, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "New", decodeBody[models.CompanyResponse](t, rr).Company.Name)

	mockSvc.EXPECT().Update(gomock.Any(), "acme", map[string]any{}).
		Return(nil, apperrors.Validation("no fields to update"))

	rr = serve(t, http.MethodPatch, "/companies/{handle}", "/companies/acme", h, map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCompanyServicer(ctrl)
	h := NewDeleteCompanyHandler(mockSvc)

	mockSvc.EXPECT().Delete(gomock.Any(), "acme").Return(nil)

	rr := serve(t, http.MethodDelete, "/companies/{handle}", "/companies/acme", h, nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, response.MessageResponse{Message: "Company deleted"}, decodeBody[response.MessageResponse](t, rr))
}
