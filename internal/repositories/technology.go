package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/models"
)

// TechnologyRepository links skill tags to jobs and users.
// The Set methods issue several statements and belong in a transaction.
type TechnologyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTechnologyRepository(db *sqlx.DB, txGetter TxGetter) *TechnologyRepository {
	return &TechnologyRepository{db: db, txGetter: txGetter}
}

func (r *TechnologyRepository) ensure(ctx context.Context, ex sqlx.ExtContext, names []string) error {
	const query = `
		INSERT INTO technologies (name)
		SELECT DISTINCT unnest($1::text[])
		ON CONFLICT (name) DO NOTHING
	`

	res, err := ex.ExecContext(ctx, query, names)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{names}, rowsAffected, err)

	return err
}

func (r *TechnologyRepository) exec(ctx context.Context, ex sqlx.ExtContext, query string, args ...any) error {
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return translate(err)
}

// SetJobTechnologies replaces the technologies of a job with names.
func (r *TechnologyRepository) SetJobTechnologies(ctx context.Context, jobID int64, names []string) error {
	ex := executor(ctx, r.db, r.txGetter)

	if err := r.exec(ctx, ex, `DELETE FROM jobs_technologies WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	if err := r.ensure(ctx, ex, names); err != nil {
		return err
	}
	return r.exec(ctx, ex, `
		INSERT INTO jobs_technologies (job_id, technology_id)
		SELECT $1, id FROM technologies WHERE name = ANY($2::text[])
	`, jobID, names)
}

// SetUserTechnologies replaces the technologies of a user with names.
func (r *TechnologyRepository) SetUserTechnologies(ctx context.Context, username string, names []string) error {
	ex := executor(ctx, r.db, r.txGetter)

	if err := r.exec(ctx, ex, `DELETE FROM users_technologies WHERE username = $1`, username); err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	if err := r.ensure(ctx, ex, names); err != nil {
		return err
	}
	return r.exec(ctx, ex, `
		INSERT INTO users_technologies (username, technology_id)
		SELECT $1, id FROM technologies WHERE name = ANY($2::text[])
	`, username, names)
}

// RelevantJobs returns the jobs sharing at least one technology with username,
// each with the full list of technologies it asks for.
func (r *TechnologyRepository) RelevantJobs(ctx context.Context, username string) ([]models.RelevantJob, error) {
	const query = `
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, j.date_posted,
		       json_agg(t.name ORDER BY t.name) AS tech
		FROM jobs j
		JOIN jobs_technologies jt ON jt.job_id = j.id
		JOIN technologies t ON t.id = jt.technology_id
		WHERE j.id IN (
			SELECT jt2.job_id
			FROM jobs_technologies jt2
			JOIN users_technologies ut ON ut.technology_id = jt2.technology_id
			WHERE ut.username = $1
		)
		GROUP BY j.id
		ORDER BY j.date_posted DESC, j.id DESC
	`

	jobs := []models.RelevantJob{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &jobs, query, username)

	logQuery(query, []any{username}, len(jobs), err)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}
