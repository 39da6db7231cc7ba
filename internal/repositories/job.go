package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/sqlbuilder"
)

// JobTable is the partial-update allow-list for jobs.
var JobTable = sqlbuilder.Table{
	Name:      "jobs",
	Key:       "id",
	Columns:   []string{"title", "salary", "equity", "company_handle"},
	Returning: []string{"id", "title", "salary", "equity", "company_handle", "date_posted"},
}

// JobRepository stores jobs in Postgres.
type JobRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewJobRepository(db *sqlx.DB, txGetter TxGetter) *JobRepository {
	return &JobRepository{db: db, txGetter: txGetter}
}

// List returns the jobs matching filter, newest first.
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter) ([]models.JobSummary, error) {
	var where sqlbuilder.Where
	where.ILike("title", filter.Search)
	if filter.MinSalary != nil {
		where.Gte("salary", *filter.MinSalary)
	}
	if filter.MinEquity != nil {
		where.Gte("equity", *filter.MinEquity)
	}
	clause, args := where.Build()

	query := `SELECT id, title, company_handle FROM jobs` + clause + ` ORDER BY date_posted DESC, id DESC`

	jobs := []models.JobSummary{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &jobs, query, args...)

	logQuery(query, args, len(jobs), err)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByCompany returns every job of a company, newest first.
func (r *JobRepository) ListByCompany(ctx context.Context, handle string) ([]models.Job, error) {
	const query = `
		SELECT id, title, salary, equity, company_handle, date_posted
		FROM jobs
		WHERE company_handle = $1
		ORDER BY date_posted DESC, id DESC
	`

	jobs := []models.Job{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &jobs, query, handle)

	logQuery(query, []any{handle}, len(jobs), err)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID returns the job or nil when there is none.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	const query = `
		SELECT id, title, salary, equity, company_handle, date_posted
		FROM jobs
		WHERE id = $1
	`

	var job models.Job
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &job, query, id)

	logQuery(query, []any{id}, job, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a job; the id and posting date are assigned by the database.
func (r *JobRepository) Create(ctx context.Context, job models.Job) (*models.Job, error) {
	const query = `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity, company_handle, date_posted
	`
	args := []any{job.Title, job.Salary, job.Equity, job.CompanyHandle}

	var created models.Job
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created, err)

	if err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

// Update changes the given columns and returns the job, or nil when there is none.
func (r *JobRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Job, error) {
	query, args, err := JobTable.Update(fields, id)
	if err != nil {
		return nil, err
	}

	var job models.Job
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &job, query, args...)

	logQuery(query, args, job, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// Delete removes a job and returns it, or nil when there was none.
func (r *JobRepository) Delete(ctx context.Context, id int64) (*models.Job, error) {
	const query = `
		DELETE FROM jobs
		WHERE id = $1
		RETURNING id, title, salary, equity, company_handle, date_posted
	`

	var job models.Job
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &job, query, id)

	logQuery(query, []any{id}, job, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}
