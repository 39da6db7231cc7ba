package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/sbilibin2017/jobly/internal/sqlbuilder"
)

// UserTable is the partial-update allow-list for users.
// Neither username nor is_admin can be changed through it.
var UserTable = sqlbuilder.Table{
	Name:      "users",
	Key:       "username",
	Columns:   []string{"password", "first_name", "last_name", "email", "photo_url"},
	Returning: []string{"username", "first_name", "last_name", "email", "photo_url"},
}

// UserRepository stores users in Postgres.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// List returns the users matching filter, ordered by username.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	var where sqlbuilder.Where
	where.ILike("username", filter.Username).
		ILike("first_name", filter.FirstName).
		ILike("last_name", filter.LastName)
	clause, args := where.Build()

	query := `SELECT username, first_name, last_name, email FROM users` + clause + ` ORDER BY username`

	users := []models.UserSummary{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)

	logQuery(query, args, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByUsername returns the user with its password hash, or nil when there is none.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT username, password, first_name, last_name, email, photo_url, is_admin
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)

	// the hash is never logged
	logQuery(query, []any{username}, user.Username, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists reports whether username is taken.
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, username)

	logQuery(query, []any{username}, exists, err)

	return exists, err
}

// Create inserts a user. user.Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING username, first_name, last_name, email, photo_url, is_admin
	`
	args := []any{user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.PhotoURL, user.IsAdmin}

	var created models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, []any{user.Username, user.FirstName, user.LastName, user.Email, user.PhotoURL, user.IsAdmin}, created.Username, err)

	if err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

// Update changes the given columns and returns the profile, or nil when there is none.
// A password in fields must already be hashed.
func (r *UserRepository) Update(ctx context.Context, username string, fields map[string]any) (*models.UserProfile, error) {
	query, args, err := UserTable.Update(fields, username)
	if err != nil {
		return nil, err
	}

	var user models.UserProfile
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logQuery(query, []any{username}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Delete removes a user and their applications. It reports whether a row was removed.
func (r *UserRepository) Delete(ctx context.Context, username string) (bool, error) {
	const query = `DELETE FROM users WHERE username = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{username}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
