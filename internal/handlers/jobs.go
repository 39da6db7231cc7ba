package handlers

//go:generate mockgen -source=jobs.go -destination=jobs_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/response"
)

// JobServicer defines the job operations the handlers need.
type JobServicer interface {
	List(ctx context.Context, filter models.JobFilter) ([]models.JobSummary, error)
	Get(ctx context.Context, id int64) (*models.JobDetail, error)
	Create(ctx context.Context, job models.Job, technologies []string) (*models.Job, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
	Relevant(ctx context.Context, username string) ([]models.RelevantJob, error)
	Apply(ctx context.Context, username string, id int64, state string) (*models.Application, error)
}

// jobID parses the {id} route parameter. Ids that are not numbers, or do not
// fit the SERIAL column, cannot exist.
func jobID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperrors.NotFound("No job found with id %s", raw)
	}
	return id, nil
}

// NewListJobsHandler returns an HTTP handler listing jobs.
// @Summary List jobs
// @Description Jobs filtered by title substring, salary and equity, newest first
// @Tags jobs
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param min_salary query number false "Minimum salary"
// @Param min_equity query number false "Minimum equity"
// @Success 200 {object} models.JobsResponse
// @Failure 403 {object} response.ErrorResponse "Not logged in"
// @Security BearerAuth
// @Router /jobs [get]
func NewListJobsHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.JobFilter{
			Search:    r.URL.Query().Get("search"),
			MinSalary: queryFloat(r, "min_salary"),
			MinEquity: queryFloat(r, "min_equity"),
		}

		jobs, err := svc.List(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.JobsResponse{Jobs: jobs})
	}
}

// NewCreateJobHandler returns an HTTP handler creating a job.
// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body models.CreateJobRequest true "Job"
// @Success 201 {object} models.JobResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request body"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse "No such company"
// @Security BearerAuth
// @Router /jobs [post]
func NewCreateJobHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateJobRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		job, err := svc.Create(r.Context(), req.Job(), req.Technologies)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusCreated, models.JobResponse{Job: job})
	}
}

// NewRelevantJobsHandler returns an HTTP handler listing the jobs that match the caller's technologies.
// @Summary Relevant jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} models.RelevantJobsResponse
// @Failure 403 {object} response.ErrorResponse "Not logged in"
// @Security BearerAuth
// @Router /jobs/relevant [get]
func NewRelevantJobsHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := currentUser(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		jobs, err := svc.Relevant(r.Context(), claims.Username)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.RelevantJobsResponse{Jobs: jobs})
	}
}

// NewGetJobHandler returns an HTTP handler fetching one job with its company.
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} models.JobDetailResponse
// @Failure 403 {object} response.ErrorResponse "Not logged in"
// @Failure 404 {object} response.ErrorResponse "No such job"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func NewGetJobHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := jobID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		job, err := svc.Get(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.JobDetailResponse{Job: job})
	}
}

// NewUpdateJobHandler returns an HTTP handler partially updating a job.
// @Summary Update job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job id"
// @Param job body models.UpdateJobRequest true "Fields to change"
// @Success 200 {object} models.JobResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request body or nothing to update"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse "No such job or company"
// @Security BearerAuth
// @Router /jobs/{id} [patch]
func NewUpdateJobHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := jobID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateJobRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		job, err := svc.Update(r.Context(), id, req.Fields())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, models.JobResponse{Job: job})
	}
}

// NewDeleteJobHandler returns an HTTP handler deleting a job.
// @Summary Delete job
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Failure 404 {object} response.ErrorResponse "No such job"
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func NewDeleteJobHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := jobID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Job deleted"})
	}
}

// NewApplyHandler returns an HTTP handler recording the caller's application to a job.
// @Summary Apply to job
// @Description Creates or replaces the caller's application; state defaults to "applied"
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job id"
// @Param application body models.ApplyRequest false "Application state"
// @Success 201 {object} models.ApplicationResponse
// @Failure 400 {object} response.ErrorResponse "Invalid state"
// @Failure 403 {object} response.ErrorResponse "Not logged in"
// @Failure 404 {object} response.ErrorResponse "No such job or user"
// @Security BearerAuth
// @Router /jobs/{id}/apply [post]
func NewApplyHandler(svc JobServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := currentUser(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := jobID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ApplyRequest
		if err := decodeOptionalJSON(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		app, err := svc.Apply(r.Context(), claims.Username, id, req.State)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.JSON(w, http.StatusCreated, models.ApplicationResponse{Application: app})
	}
}
