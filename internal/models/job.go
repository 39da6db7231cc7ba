package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Job is a full job record.
// swagger:model Job
type Job struct {
	// example: 1
	ID int64 `db:"id" json:"id"`

	// example: Backend Engineer
	Title string `db:"title" json:"title"`

	// example: 120000
	Salary float64 `db:"salary" json:"salary"`

	// example: 0.015
	Equity float64 `db:"equity" json:"equity"`

	// example: acme
	CompanyHandle string `db:"company_handle" json:"company_handle"`

	DatePosted time.Time `db:"date_posted" json:"date_posted"`
}

// JobSummary is the listing projection of a job.
// swagger:model JobSummary
type JobSummary struct {
	ID            int64  `db:"id" json:"id"`
	Title         string `db:"title" json:"title"`
	CompanyHandle string `db:"company_handle" json:"company_handle"`
}

// JobDetail is a job with its owning company.
// swagger:model JobDetail
type JobDetail struct {
	Job
	Company *Company `json:"company"`
}

// Technologies is a list of skill tags stored as a JSON array.
type Technologies []string

// Scan implements sql.Scanner for json_agg results.
func (t *Technologies) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Technologies{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("technologies: unsupported source type %T", src)
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return err
	}
	*t = names
	return nil
}

// Value implements driver.Valuer.
func (t Technologies) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	return string(b), err
}

// RelevantJob is a job matching at least one of a user's technologies,
// along with every technology the job asks for.
// swagger:model RelevantJob
type RelevantJob struct {
	Job
	Technologies Technologies `db:"tech" json:"tech"`
}

// JobFilter holds the optional listing filters.
type JobFilter struct {
	Search    string
	MinSalary *float64
	MinEquity *float64
}

// CreateJobRequest is the body of POST /jobs.
// swagger:model CreateJobRequest
type CreateJobRequest struct {
	// required: true
	Title string `json:"title" validate:"required"`

	// required: true
	Salary *float64 `json:"salary" validate:"required,min=0"`

	// required: true
	Equity *float64 `json:"equity" validate:"required,min=0,max=1"`

	// required: true
	CompanyHandle string `json:"company_handle" validate:"required"`

	// Skill tags the job asks for
	Technologies []string `json:"technologies" validate:"omitempty,dive,required"`
}

// Job converts a validated request into a record.
func (r CreateJobRequest) Job() Job {
	job := Job{
		Title:         r.Title,
		CompanyHandle: r.CompanyHandle,
	}
	if r.Salary != nil {
		job.Salary = *r.Salary
	}
	if r.Equity != nil {
		job.Equity = *r.Equity
	}
	return job
}

// UpdateJobRequest is the body of PATCH /jobs/{id}.
// swagger:model UpdateJobRequest
type UpdateJobRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1"`
	Salary        *float64 `json:"salary" validate:"omitempty,min=0"`
	Equity        *float64 `json:"equity" validate:"omitempty,min=0,max=1"`
	CompanyHandle *string  `json:"company_handle" validate:"omitempty,min=1"`
}

// Fields returns the supplied fields keyed by column.
func (r UpdateJobRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.Equity != nil {
		fields["equity"] = *r.Equity
	}
	if r.CompanyHandle != nil {
		fields["company_handle"] = *r.CompanyHandle
	}
	return fields
}

// JobResponse wraps a single job.
// swagger:model JobResponse
type JobResponse struct {
	Job *Job `json:"job"`
}

// JobDetailResponse wraps a job with its company.
// swagger:model JobDetailResponse
type JobDetailResponse struct {
	Job *JobDetail `json:"job"`
}

// JobsResponse wraps a job listing.
// swagger:model JobsResponse
type JobsResponse struct {
	Jobs []JobSummary `json:"jobs"`
}

// RelevantJobsResponse wraps the jobs matching the caller's technologies.
// swagger:model RelevantJobsResponse
type RelevantJobsResponse struct {
	Jobs []RelevantJob `json:"jobs"`
}
