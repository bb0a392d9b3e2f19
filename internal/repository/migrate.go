package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"github.com/mishasvintus/cohort_gateway/migrations"
)

// Migrator applies the embedded schema migrations with goose.
type Migrator struct {
	db *sql.DB
}

// NewMigrator returns a migrator bound to db.
func NewMigrator(db *sql.DB) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("nil database provided")
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("configure goose: %w", err)
	}
	return &Migrator{db: db}, nil
}

// Up applies pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	log.Info().Str("module", "repository.migrate").Msg("applying migrations")
	if err := goose.UpContext(runCtx, m.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Info().Str("module", "repository.migrate").Msg("migrations applied")
	return nil
}

// Status reports applied and pending migrations.
func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	return nil
}

// Down rolls back either the latest migration or down to targetVersion.
func (m *Migrator) Down(ctx context.Context, targetVersion int64) error {
	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if targetVersion > 0 {
		log.Info().Str("module", "repository.migrate").Int64("target", targetVersion).Msg("rolling back migrations")
		if err := goose.DownToContext(runCtx, m.db, ".", targetVersion); err != nil {
			return fmt.Errorf("rollback to version %d: %w", targetVersion, err)
		}
		return nil
	}

	log.Info().Str("module", "repository.migrate").Msg("rolling back latest migration")
	if err := goose.DownContext(runCtx, m.db, "."); err != nil {
		return fmt.Errorf("rollback latest migration: %w", err)
	}
	return nil
}
