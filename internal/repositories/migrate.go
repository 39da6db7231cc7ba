package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobly/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates every table that does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	logger.Log.Infow("schema applied", "error", err)
	return err
}
