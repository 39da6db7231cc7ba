package handlers

//go:generate mockgen -source=companies.go -destination=companies_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/response"
)

// CompanyServicer defines the company operations the handlers need.
type CompanyServicer interface {
	List(ctx context.Context, filter models.CompanyFilter) ([]models.CompanySummary, error)
	Get(ctx context.Context, handle string) (*models.CompanyDetail, error)
	Create(ctx context.Context, company models.Company) (*models.Company, error)
	Update(ctx context.Context, handle string, fields map[string]any) (*models.Company, error)
	Delete(ctx context.Context, handle string) error
}

// NewListCompaniesHandler returns an HTTP handler listing companies.
// @Summary List companies
// @Description Companies filtered by name substring and employee count, ordered by name
// @Tags companies
// @Produce json
// @Param search query string false "Case-insensitive name substring"
// @Param min_employees query int false "Minimum number of employees"
// @Param max_employees query int false "Maximum number of employees"
// @Success 200 {object} models.CompaniesResponse
// @Failure 400 {object} response.ErrorResponse "min_employees greater than max_employees"
// @Failure 403 {object} response.ErrorResponse "Not logged in"
// @Security BearerAuth
// @Router /companies [get]
func NewListCompaniesHandler(svc CompanyServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.CompanyFilter{
			Search:       r.URL.Query().Get("search"),
			MinEmployees: queryInt(r, "min_employees"),
			MaxEmployees: queryInt(r, "max_employees"),
		}

		companies, err := svc.List(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.CompaniesResponse{Companies: companies})
	}
}

// NewCreateCompanyHandler returns an HTTP handler creating a company.
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body models.CreateCompanyRequest true "Company"
// @Success 201 {object} models.CompanyResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request body"
// @Failure 401 {object} response.ErrorResponse "Handle or name already used"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Security BearerAuth
// @Router /companies [post]
func NewCreateCompanyHandler(svc CompanyServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCompanyRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		company, err := svc.Create(r.Context(), req.Company())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusCreated, models.CompanyResponse{Company: company})
	}
}

// NewGetCompanyHandler returns an HTTP handler fetching one company with its jobs.
// @Summary Get company
// @Tags companies
// @Produce json
// @Param handle path string true "Company handle"
// @Success 200 {object} models.CompanyDetailResponse
// @Failure 403 {object} response.ErrorResponse "Not logged in"
// @Failure 404 {object} response.ErrorResponse "No such company"
// @Security BearerAuth
// @Router /companies/{handle} [get]
func NewGetCompanyHandler(svc CompanyServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company, err := svc.Get(r.Context(), chi.URLParam(r, "handle"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.CompanyDetailResponse{Company: company})
	}
}

// NewUpdateCompanyHandler returns an HTTP handler partially updating a company.
// @Summary Update company
// @Description Only the supplied fields change; the handle cannot be changed
// @Tags companies
// @Accept json
// @Produce json
// @Param handle path string true "Company handle"
// @Param company body models.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} models.CompanyResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request body or nothing to update"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse "No such company"
// @Security BearerAuth
// @Router /companies/{handle} [patch]
func NewUpdateCompanyHandler(svc CompanyServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateCompanyRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		company, err := svc.Update(r.Context(), chi.URLParam(r, "handle"), req.Fields())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.CompanyResponse{Company: company})
	}
}

// NewDeleteCompanyHandler returns an HTTP handler deleting a company and its jobs.
// @Summary Delete company
// @Tags companies
// @Produce json
// @Param handle path string true "Company handle"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse "No such company"
// @Security BearerAuth
// @Router /companies/{handle} [delete]
func NewDeleteCompanyHandler(svc CompanyServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "handle")); err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Company deleted"})
	}
}
