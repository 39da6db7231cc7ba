package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/models"
)

// ApplicationRepository stores applications in Postgres.
type ApplicationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewApplicationRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationRepository {
	return &ApplicationRepository{db: db, txGetter: txGetter}
}

// Upsert records the state of username's application to jobID.
// An existing application is replaced, so a pair never has more than one row.
func (r *ApplicationRepository) Upsert(ctx context.Context, username string, jobID int64, state string) (*models.Application, error) {
	const query = `
		INSERT INTO applications (username, job_id, state, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (username, job_id)
		DO UPDATE SET state = EXCLUDED.state, created_at = NOW()
		RETURNING username, job_id, state, created_at
	`
	args := []any{username, jobID, state}

	var app models.Application
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, args...)

	logQuery(query, args, app, err)

	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

type userApplicationRow struct {
	State         string    `db:"state"`
	CreatedAt     time.Time `db:"created_at"`
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Salary        float64   `db:"salary"`
	Equity        float64   `db:"equity"`
	CompanyHandle string    `db:"company_handle"`
	DatePosted    time.Time `db:"date_posted"`
}

// ListByUser returns username's applications with their jobs, newest first.
func (r *ApplicationRepository) ListByUser(ctx context.Context, username string) ([]models.UserApplication, error) {
	const query = `
		SELECT a.state, a.created_at,
		       j.id, j.title, j.salary, j.equity, j.company_handle, j.date_posted
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.username = $1
		ORDER BY a.created_at DESC, j.id
	`

	var rows []userApplicationRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, username)

	logQuery(query, []any{username}, len(rows), err)

	if err != nil {
		return nil, err
	}

	apps := make([]models.UserApplication, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, models.UserApplication{
			State:     row.State,
			CreatedAt: row.CreatedAt,
			Job: models.Job{
				ID:            row.ID,
				Title:         row.Title,
				Salary:        row.Salary,
				Equity:        row.Equity,
				CompanyHandle: row.CompanyHandle,
				DatePosted:    row.DatePosted,
			},
		})
	}
	return apps, nil
}
