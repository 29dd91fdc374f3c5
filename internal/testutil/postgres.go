// Package testutil provides a containerized Postgres for integration tests.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    database := testutil.SetupPostgres(t)
//	    repos := repositories.NewRepositories(database.Pool)
//	    // ... test code ...
//	}
//
// Tests using it need a running Docker daemon. They are built only with the
// integration tag and skip themselves under -short.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yigit/coursehub/internal/app/migrations"
	"github.com/yigit/coursehub/internal/db"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "coursehub"
	postgresPassword = "coursehub"
	postgresDB       = "coursehub_test"
)

// SetupPostgres starts a Postgres container, connects a pool to it and
// applies the schema migrations. The pool and container are released
// through t.Cleanup.
func SetupPostgres(t *testing.T) *db.PostgresDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping container-based test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDB,
		},
		// The server logs readiness twice: once for the init run, once for the real start.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("Failed to get mapped port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, host, port.Port(), postgresDB)

	database, err := db.Connect(ctx, dsn, db.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	t.Cleanup(database.Close)

	if err := migrations.NewMigrator(database.Pool, zerolog.Nop()).Up(ctx); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return database
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, database *db.PostgresDB, table string) int64 {
	t.Helper()

	var count int64
	err := database.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}
