// Package testdb connects tests to a disposable PostgreSQL database.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/mishasvintus/cohort_gateway/internal/repository"
)

// Setup connects to the test database, applies migrations and empties every
// table. The test is skipped when the database is unreachable.
func Setup(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		env("TEST_DB_HOST", "localhost"),
		env("TEST_DB_PORT", "5432"),
		env("TEST_DB_USER", "cohort_user"),
		env("TEST_DB_PASSWORD", "cohort_password"),
		env("TEST_DB_NAME", "cohort_db"),
	)

	ctx := context.Background()
	db, err := repository.NewPostgresDB(ctx, dsn)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = Cleanup(db)
		_ = db.Close()
	})

	migrator, err := repository.NewMigrator(db)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := Cleanup(db); err != nil {
		t.Fatalf("failed to cleanup test database: %v", err)
	}
	return db
}

// Cleanup truncates all tables in reverse order of dependencies.
func Cleanup(db *sql.DB) error {
	tables := []string{
		"cohort_draft_members",
		"cohort_drafts",
	}

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
