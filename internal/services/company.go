package services

//go:generate mockgen -source=company.go -destination=company_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/jobly/internal/apperrors"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/repositories"
)

// CompanyRepository reads and writes companies.
type CompanyRepository interface {
	List(ctx context.Context, filter models.CompanyFilter) ([]models.CompanySummary, error)
	GetByHandle(ctx context.Context, handle string) (*models.Company, error)
	ExistsByHandleOrName(ctx context.Context, handle string, name string) (bool, error)
	Create(ctx context.Context, company models.Company) (*models.Company, error)
	Update(ctx context.Context, handle string, fields map[string]any) (*models.Company, error)
	Delete(ctx context.Context, handle string) (bool, error)
}

// CompanyJobLister lists the jobs of a company.
type CompanyJobLister interface {
	ListByCompany(ctx context.Context, handle string) ([]models.Job, error)
}

// CompanyCache caches company details. Get returns nil on a miss.
type CompanyCache interface {
	Get(ctx context.Context, handle string) (*models.CompanyDetail, error)
	Set(ctx context.Context, company *models.CompanyDetail) error
	Invalidate(ctx context.Context, handle string) error
}

// CompanyService is the access layer for companies.
type CompanyService struct {
	companies CompanyRepository
	jobs      CompanyJobLister
	cache     CompanyCache // optional
}

// NewCompanyService creates a new CompanyService. cache may be nil.
func NewCompanyService(companies CompanyRepository, jobs CompanyJobLister, cache CompanyCache) *CompanyService {
	return &CompanyService{
		companies: companies,
		jobs:      jobs,
		cache:     cache,
	}
}

// List returns the companies matching filter.
func (s *CompanyService) List(ctx context.Context, filter models.CompanyFilter) ([]models.CompanySummary, error) {
	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
		return nil, apperrors.Validation("min_employees must be less than max_employees")
	}

	companies, err := s.companies.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list companies", "error", err)
		return nil, err
	}
	return companies, nil
}

// Get returns a company with all of its jobs.
func (s *CompanyService) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, handle)
		if err != nil {
			logger.Log.Warnw("company cache read failed", "handle", handle, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	company, err := s.companies.GetByHandle(ctx, handle)
	if err != nil {
		logger.Log.Errorw("failed to get company", "handle", handle, "error", err)
		return nil, err
	}
	if company == nil {
		return nil, apperrors.NotFound("No company found with handle %s", handle)
	}

	jobs, err := s.jobs.ListByCompany(ctx, handle)
	if err != nil {
		logger.Log.Errorw("failed to list company jobs", "handle", handle, "error", err)
		return nil, err
	}

	detail := &models.CompanyDetail{Company: *company, Jobs: jobs}

	if s.cache != nil {
		if err := s.cache.Set(ctx, detail); err != nil {
			logger.Log.Warnw("company cache write failed", "handle", handle, "error", err)
		}
	}

	return detail, nil
}

// Create adds a company whose handle and name are both unused.
func (s *CompanyService) Create(ctx context.Context, company models.Company) (*models.Company, error) {
	exists, err := s.companies.ExistsByHandleOrName(ctx, company.Handle, company.Name)
	if err != nil {
		logger.Log.Errorw("failed to check company exists", "handle", company.Handle, "error", err)
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("A company's name and handle must be unique")
	}

	created, err := s.companies.Create(ctx, company)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, apperrors.Conflict("A company's name and handle must be unique")
	}
	if err != nil {
		logger.Log.Errorw("failed to create company", "handle", company.Handle, "error", err)
		return nil, err
	}

	return created, nil
}

// Update changes the supplied fields of a company.
func (s *CompanyService) Update(ctx context.Context, handle string, fields map[string]any) (*models.Company, error) {
	if len(fields) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	company, err := s.companies.Update(ctx, handle, fields)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, apperrors.Conflict("A company's name and handle must be unique")
	}
	if err != nil {
		logger.Log.Errorw("failed to update company", "handle", handle, "error", err)
		return nil, err
	}
	if company == nil {
		return nil, apperrors.NotFound("No company found with handle %s", handle)
	}

	invalidateCompany(ctx, s.cache, handle)
	return company, nil
}

// Delete removes a company and its jobs.
func (s *CompanyService) Delete(ctx context.Context, handle string) error {
	deleted, err := s.companies.Delete(ctx, handle)
	if err != nil {
		logger.Log.Errorw("failed to delete company", "handle", handle, "error", err)
		return err
	}
	if !deleted {
		return apperrors.NotFound("No company found with handle %s", handle)
	}

	invalidateCompany(ctx, s.cache, handle)
	return nil
}

func invalidateCompany(ctx context.Context, cache CompanyCache, handle string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, handle); err != nil {
		logger.Log.Warnw("company cache invalidation failed", "handle", handle, "error", err)
	}
}
