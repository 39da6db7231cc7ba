package services

//go:generate mockgen -source=job.go -destination=job_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// JobRepository reads and writes jobs.
type JobRepository interface {
	List(ctx context.Context, filter models.JobFilter) ([]models.JobSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, job models.Job) (*models.Job, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Job, error)
	Delete(ctx context.Context, id int64) (*models.Job, error)
}

// JobCompanyReader fetches the company owning a job.
type JobCompanyReader interface {
	GetByHandle(ctx context.Context, handle string) (*models.Company, error)
}

// JobTechnologyRepository links technologies to jobs and matches them to users.
type JobTechnologyRepository interface {
	SetJobTechnologies(ctx context.Context, jobID int64, names []string) error
	RelevantJobs(ctx context.Context, username string) ([]models.RelevantJob, error)
}

// ApplicationWriter records applications.
type ApplicationWriter interface {
	Upsert(ctx context.Context, username string, jobID int64, state string) (*models.Application, error)
}

// UserExistenceChecker reports whether a user exists.
type UserExistenceChecker interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// JobService is the access layer for jobs and applications.
type JobService struct {
	jobs         JobRepository
	companies    JobCompanyReader
	technologies JobTechnologyRepository
	applications ApplicationWriter
	users        UserExistenceChecker
	cache        CompanyCache // optional
	kafkaWriter  KafkaWriter  // optional
	afterCommit  func(ctx context.Context, fn func(ctx context.Context))
}

// JobServiceOpt configures a JobService.
type JobServiceOpt func(*JobService)

// WithAfterCommit defers cache invalidation and event publishing through hook,
// which must run fn only once the surrounding write is durable.
func WithAfterCommit(hook func(ctx context.Context, fn func(ctx context.Context))) JobServiceOpt {
	return func(s *JobService) {
		s.afterCommit = hook
	}
}

// NewJobService creates a new JobService. cache and kafkaWriter may be nil.
// Without WithAfterCommit side effects run as soon as the write returns.
func NewJobService(
	jobs JobRepository,
	companies JobCompanyReader,
	technologies JobTechnologyRepository,
	applications ApplicationWriter,
	users UserExistenceChecker,
	cache CompanyCache,
	kafkaWriter KafkaWriter,
	opts ...JobServiceOpt,
) *JobService {
	s := &JobService{
		jobs:         jobs,
		companies:    companies,
		technologies: technologies,
		applications: applications,
		users:        users,
		cache:        cache,
		kafkaWriter:  kafkaWriter,
		afterCommit:  runNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func runNow(ctx context.Context, fn func(ctx context.Context)) {
	fn(ctx)
}

// invalidate drops the cached details of handles once the write has committed.
func (s *JobService) invalidate(ctx context.Context, handles ...string) {
	if s.cache == nil {
		return
	}
	s.afterCommit(ctx, func(ctx context.Context) {
		for _, handle := range handles {
			invalidateCompany(ctx, s.cache, handle)
		}
	})
}

// List returns the jobs matching filter.
func (s *JobService) List(ctx context.Context, filter models.JobFilter) ([]models.JobSummary, error) {
	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

// Get returns a job with its company.
func (s *JobService) Get(ctx context.Context, id int64) (*models.JobDetail, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "id", id, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NotFound("No job found with id %d", id)
	}

	company, err := s.companies.GetByHandle(ctx, job.CompanyHandle)
	if err != nil {
		logger.Log.Errorw("failed to get job company", "id", id, "handle", job.CompanyHandle, "error", err)
		return nil, err
	}

	return &models.JobDetail{Job: *job, Company: company}, nil
}

// Create adds a job to an existing company and links its technologies.
func (s *JobService) Create(ctx context.Context, job models.Job, technologies []string) (*models.Job, error) {
	created, err := s.jobs.Create(ctx, job)
	if errors.Is(err, repositories.ErrForeignKeyViolation) {
		return nil, apperrors.NotFound("No company found with handle %s", job.CompanyHandle)
	}
	if err != nil {
		logger.Log.Errorw("failed to create job", "company_handle", job.CompanyHandle, "error", err)
		return nil, err
	}

	if len(technologies) > 0 {
		if err := s.technologies.SetJobTechnologies(ctx, created.ID, technologies); err != nil {
			logger.Log.Errorw("failed to link job technologies", "id", created.ID, "error", err)
			return nil, err
		}
	}

	s.invalidate(ctx, created.CompanyHandle)
	return created, nil
}

// Update changes the supplied fields of a job.
func (s *JobService) Update(ctx context.Context, id int64, fields map[string]any) (*models.Job, error) {
	if len(fields) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	current, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "id", id, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, apperrors.NotFound("No job found with id %d", id)
	}

	job, err := s.jobs.Update(ctx, id, fields)
	if errors.Is(err, repositories.ErrForeignKeyViolation) {
		return nil, apperrors.NotFound("No company found with handle %v", fields["company_handle"])
	}
	if err != nil {
		logger.Log.Errorw("failed to update job", "id", id, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NotFound("No job found with id %d", id)
	}

	if job.CompanyHandle != current.CompanyHandle {
		s.invalidate(ctx, current.CompanyHandle, job.CompanyHandle)
	} else {
		s.invalidate(ctx, current.CompanyHandle)
	}
	return job, nil
}

// Delete removes a job.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	job, err := s.jobs.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete job", "id", id, "error", err)
		return err
	}
	if job == nil {
		return apperrors.NotFound("No job found with id %d", id)
	}

	s.invalidate(ctx, job.CompanyHandle)
	return nil
}

// Relevant returns the jobs sharing a technology with username.
func (s *JobService) Relevant(ctx context.Context, username string) ([]models.RelevantJob, error) {
	jobs, err := s.technologies.RelevantJobs(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list relevant jobs", "username", username, "error", err)
		return nil, err
	}
	return jobs, nil
}

// Apply records username's application to job id in state, replacing any earlier one.
// An empty state means "applied".
func (s *JobService) Apply(ctx context.Context, username string, id int64, state string) (*models.Application, error) {
	if state == "" {
		state = models.StateApplied
	}
	if !models.ValidApplicationState(state) {
		return nil, apperrors.Validation("State must be one of: interested, applied, accepted, rejected")
	}

	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "error", err)
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("No user found with username %s", username)
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "id", id, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NotFound("No job found with id %d", id)
	}

	app, err := s.applications.Upsert(ctx, username, id, state)
	if errors.Is(err, repositories.ErrForeignKeyViolation) {
		return nil, apperrors.NotFound("No job found with id %d", id)
	}
	if err != nil {
		logger.Log.Errorw("failed to save application", "username", username, "id", id, "error", err)
		return nil, err
	}

	s.afterCommit(ctx, func(ctx context.Context) {
		s.publishApplication(ctx, app)
	})
	return app, nil
}

// publishApplication publishes an application change to Kafka.
func (s *JobService) publishApplication(ctx context.Context, app *models.Application) {
	event := models.ApplicationEvent{
		ID:         uuid.NewString(),
		Type:       models.ApplicationChanged,
		Username:   app.Username,
		JobID:      app.JobID,
		State:      app.State,
		OccurredAt: time.Now().UTC(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.ID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal application event", "event_id", event.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%d", app.Username, app.JobID)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish application event", "event_id", event.ID, "error", err)
	} else {
		logger.Log.Infow("Application event published", "event_id", event.ID, "state", event.State)
	}
}
