package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func truncateAll(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.Exec(`TRUNCATE companies, jobs, users, applications, technologies, jobs_technologies, users_technologies RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func seedCompany(t *testing.T, db *sqlx.DB, handle, name string, numEmployees int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO companies (handle, name, num_employees) VALUES ($1, $2, $3)`, handle, name, numEmployees)
	require.NoError(t, err)
}

func seedJob(t *testing.T, db *sqlx.DB, title string, salary, equity float64, handle string) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, `INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4) RETURNING id`,
		title, salary, equity, handle)
	require.NoError(t, err)
	return id
}

func seedUser(t *testing.T, db *sqlx.DB, username string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (username, password, first_name, last_name, email) VALUES ($1, 'hash', $2, $3, $4)`,
		username, "First "+username, "Last "+username, username+"@example.com")
	require.NoError(t, err)
}
