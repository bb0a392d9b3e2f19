// Package draft stores cohort drafts.
package draft

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/repository"
)

// Create inserts a new draft without members.
func Create(ctx context.Context, exec repository.DBTX, d *domain.Draft) error {
	query := `
		INSERT INTO cohort_drafts (draft_id, name, description, owner_user_id, cohort_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := exec.QueryRowContext(ctx, query, d.ID, d.Name, d.Description, d.OwnerUserID, nullString(d.CohortID)).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}
	return nil
}

// Get retrieves a draft by ID without its members.
func Get(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.Draft, error) {
	query := `
		SELECT draft_id, name, description, owner_user_id, cohort_id, created_at, updated_at
		FROM cohort_drafts
		WHERE draft_id = $1
	`
	var (
		d        domain.Draft
		owner    sql.NullInt64
		cohortID sql.NullString
	)
	err := exec.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&owner,
		&cohortID,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	if owner.Valid {
		d.OwnerUserID = &owner.Int64
	}
	d.CohortID = cohortID.String
	return &d, nil
}

// GetForUpdate retrieves a draft and locks its row until the transaction ends.
func GetForUpdate(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.Draft, error) {
	var locked uuid.UUID
	query := `SELECT draft_id FROM cohort_drafts WHERE draft_id = $1 FOR UPDATE`
	if err := exec.QueryRowContext(ctx, query, id).Scan(&locked); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock draft: %w", err)
	}
	return Get(ctx, exec, locked)
}

// SetCohortID links a draft to the cohort it was committed as.
func SetCohortID(ctx context.Context, exec repository.DBTX, id uuid.UUID, cohortID string) error {
	query := `UPDATE cohort_drafts SET cohort_id = $1, updated_at = now() WHERE draft_id = $2`
	result, err := exec.ExecContext(ctx, query, nullString(cohortID), id)
	if err != nil {
		return fmt.Errorf("failed to set draft cohort: %w", err)
	}
	return requireRow(result)
}

// Touch bumps updated_at of a draft.
func Touch(ctx context.Context, exec repository.DBTX, id uuid.UUID) error {
	query := `UPDATE cohort_drafts SET updated_at = now() WHERE draft_id = $1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to touch draft: %w", err)
	}
	return requireRow(result)
}

// Delete removes a draft and, by cascade, its members.
func Delete(ctx context.Context, exec repository.DBTX, id uuid.UUID) error {
	query := `DELETE FROM cohort_drafts WHERE draft_id = $1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
