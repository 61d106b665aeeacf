package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/parky-api/internal/config"
	"github.com/phrazzld/parky-api/internal/platform/postgres"
	"github.com/phrazzld/parky-api/internal/redact"
)

// Environment variables consulted for the test database, in order.
const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvParkyTestDBURL   = "PARKY_TEST_DB_URL"
	EnvParkyDatabaseURL = "PARKY_DATABASE_URL"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDatabaseURL returns the first database URL set in the environment,
// or "" when none is.
func GetTestDatabaseURL() string {
	for _, name := range []string{EnvDatabaseURL, EnvParkyTestDBURL, EnvParkyDatabaseURL} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Open connects to the test database, applying migrations once per process.
// The test is skipped when no database URL is configured.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("skipping integration test: %s is not set", EnvDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, config.DatabaseConfig{
		URL:                    dbURL,
		MaxOpenConns:           5,
		MaxIdleConns:           2,
		ConnMaxLifetimeMinutes: 5,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %s", redact.Error(err))
	}
	t.Cleanup(func() { _ = db.Close() })

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, db.DB, "up", nil)
	})
	if migrateErr != nil {
		t.Fatalf("failed to migrate test database: %s", redact.Error(migrateErr))
	}

	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so tests
// never see each other's rows.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %s", redact.Error(err))
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: failed to roll back transaction: %s", redact.Error(err))
		}
	}()

	fn(t, tx)
}

// Savepoint runs fn behind a savepoint and rolls back to it when fn fails, so
// a statement that is expected to violate a constraint does not abort the
// surrounding test transaction. fn's error is returned unchanged.
func Savepoint(t *testing.T, tx *sqlx.Tx, fn func() error) error {
	t.Helper()

	if _, err := tx.Exec("SAVEPOINT testdb_savepoint"); err != nil {
		t.Fatalf("failed to create savepoint: %s", redact.Error(err))
	}

	fnErr := fn()

	stmt := "RELEASE SAVEPOINT testdb_savepoint"
	if fnErr != nil {
		stmt = "ROLLBACK TO SAVEPOINT testdb_savepoint"
	}
	if _, err := tx.Exec(stmt); err != nil {
		t.Fatalf("failed to close savepoint: %s", redact.Error(err))
	}

	return fnErr
}
