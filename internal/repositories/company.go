package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/sqlbuilder"
)

// CompanyTable is the partial-update allow-list for companies.
var CompanyTable = sqlbuilder.Table{
	Name:      "companies",
	Key:       "handle",
	Columns:   []string{"name", "num_employees", "description", "logo_url"},
	Returning: []string{"handle", "name", "num_employees", "description", "logo_url"},
}

// CompanyRepository stores companies in Postgres.
type CompanyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCompanyRepository(db *sqlx.DB, txGetter TxGetter) *CompanyRepository {
	return &CompanyRepository{db: db, txGetter: txGetter}
}

// List returns the companies matching filter, ordered by name.
func (r *CompanyRepository) List(ctx context.Context, filter models.CompanyFilter) ([]models.CompanySummary, error) {
	var where sqlbuilder.Where
	where.ILike("name", filter.Search)
	if filter.MinEmployees != nil {
		where.Gte("num_employees", *filter.MinEmployees)
	}
	if filter.MaxEmployees != nil {
		where.Lte("num_employees", *filter.MaxEmployees)
	}
	clause, args := where.Build()

	query := `SELECT handle, name FROM companies` + clause + ` ORDER BY name`

	companies := []models.CompanySummary{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &companies, query, args...)

	logQuery(query, args, len(companies), err)

	if err != nil {
		return nil, err
	}
	return companies, nil
}

// GetByHandle returns the company or nil when there is none.
func (r *CompanyRepository) GetByHandle(ctx context.Context, handle string) (*models.Company, error) {
	const query = `
		SELECT handle, name, num_employees, description, logo_url
		FROM companies
		WHERE handle = $1
	`

	var company models.Company
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &company, query, handle)

	logQuery(query, []any{handle}, company, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ExistsByHandleOrName reports whether a company already uses handle or name.
func (r *CompanyRepository) ExistsByHandleOrName(ctx context.Context, handle, name string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM companies WHERE handle = $1 OR name = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, handle, name)

	logQuery(query, []any{handle, name}, exists, err)

	return exists, err
}

// Create inserts a company.
func (r *CompanyRepository) Create(ctx context.Context, company models.Company) (*models.Company, error) {
	const query = `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING handle, name, num_employees, description, logo_url
	`
	args := []any{company.Handle, company.Name, company.NumEmployees, company.Description, company.LogoURL}

	var created models.Company
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created, err)

	if err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

// Update changes the given columns and returns the company, or nil when there is none.
func (r *CompanyRepository) Update(ctx context.Context, handle string, fields map[string]any) (*models.Company, error) {
	query, args, err := CompanyTable.Update(fields, handle)
	if err != nil {
		return nil, err
	}

	var company models.Company
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &company, query, args...)

	logQuery(query, args, company, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

// Delete removes a company and, by cascade, its jobs. It reports whether a row was removed.
func (r *CompanyRepository) Delete(ctx context.Context, handle string) (bool, error) {
	const query = `DELETE FROM companies WHERE handle = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, handle)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{handle}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
