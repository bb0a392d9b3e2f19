// Package member stores the ordered member lists of cohort drafts.
package member

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/repository"
)

// List returns the members of a draft in list order.
func List(ctx context.Context, exec repository.DBTX, draftID uuid.UUID) ([]domain.Member, error) {
	query := `
		SELECT member_key, display_name, member_type
		FROM cohort_draft_members
		WHERE draft_id = $1
		ORDER BY position
	`
	rows, err := exec.QueryContext(ctx, query, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var (
			m   domain.Member
			typ sql.NullString
		)
		if err := rows.Scan(&m.Key, &m.DisplayName, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan draft member: %w", err)
		}
		if typ.Valid {
			m.Type = &typ.String
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return members, nil
}

// Append adds members after the current last position.
// Keys already stored for the draft are skipped.
func Append(ctx context.Context, exec repository.DBTX, draftID uuid.UUID, members []domain.Member) error {
	if len(members) == 0 {
		return nil
	}

	var next int
	query := `SELECT COALESCE(MAX(position), -1) + 1 FROM cohort_draft_members WHERE draft_id = $1`
	if err := exec.QueryRowContext(ctx, query, draftID).Scan(&next); err != nil {
		return fmt.Errorf("failed to get next member position: %w", err)
	}

	return insert(ctx, exec, draftID, next, members)
}

// Remove deletes one member of a draft. It returns sql.ErrNoRows when the
// key is not part of the draft.
func Remove(ctx context.Context, exec repository.DBTX, draftID uuid.UUID, key string) error {
	query := `DELETE FROM cohort_draft_members WHERE draft_id = $1 AND member_key = $2`
	result, err := exec.ExecContext(ctx, query, draftID, key)
	if err != nil {
		return fmt.Errorf("failed to remove draft member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceAll drops every member of a draft and stores members in their place.
func ReplaceAll(ctx context.Context, exec repository.DBTX, draftID uuid.UUID, members []domain.Member) error {
	query := `DELETE FROM cohort_draft_members WHERE draft_id = $1`
	if _, err := exec.ExecContext(ctx, query, draftID); err != nil {
		return fmt.Errorf("failed to clear draft members: %w", err)
	}
	return insert(ctx, exec, draftID, 0, members)
}

// ExistingKeys returns which of keys are already stored for the draft.
func ExistingKeys(ctx context.Context, exec repository.DBTX, draftID uuid.UUID, keys []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(keys) == 0 {
		return existing, nil
	}

	query := `
		SELECT member_key
		FROM cohort_draft_members
		WHERE draft_id = $1 AND member_key = ANY($2)
	`
	rows, err := exec.QueryContext(ctx, query, draftID, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("failed to check draft members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan member key: %w", err)
		}
		existing[key] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return existing, nil
}

func insert(ctx context.Context, exec repository.DBTX, draftID uuid.UUID, start int, members []domain.Member) error {
	query := `
		INSERT INTO cohort_draft_members (draft_id, member_key, position, display_name, member_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (draft_id, member_key) DO NOTHING
	`
	position := start
	for _, m := range members {
		result, err := exec.ExecContext(ctx, query, draftID, m.Key, position, m.DisplayName, m.Type)
		if err != nil {
			if repository.IsForeignKeyViolation(err) {
				return sql.ErrNoRows
			}
			return fmt.Errorf("failed to insert draft member %s: %w", m.Key, err)
		}
		if n, err := result.RowsAffected(); err == nil && n > 0 {
			position++
		}
	}
	return nil
}
