package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/repository"
	"github.com/mishasvintus/cohort_gateway/internal/repository/draft"
	"github.com/mishasvintus/cohort_gateway/internal/repository/member"
)

// CohortOperations is the part of CohortService drafts depend on.
type CohortOperations interface {
	GetCohortMembers(ctx context.Context, id string) (*CohortMembers, error)
	DecorateKeys(ctx context.Context, keys []string) ([]domain.Member, []domain.Notification, error)
	CreateCohort(ctx context.Context, in domain.CohortInput) (*domain.Cohort, error)
	UpdateCohort(ctx context.Context, in domain.CohortInput) (*domain.Cohort, error)
}

// DraftService handles cohort drafts stored in PostgreSQL.
type DraftService struct {
	db      *sql.DB
	cohorts CohortOperations
}

// NewDraftService creates a new draft service.
func NewDraftService(db *sql.DB, cohorts CohortOperations) *DraftService {
	return &DraftService{db: db, cohorts: cohorts}
}

// CreateDraft creates a draft. When in.CohortID is set the draft starts with
// the decorated members of that cohort.
func (s *DraftService) CreateDraft(ctx context.Context, in domain.DraftInput) (*domain.Draft, []domain.Notification, error) {
	d := &domain.Draft{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		OwnerUserID: in.OwnerUserID,
		CohortID:    in.CohortID,
		Members:     []domain.Member{},
	}

	var notifications []domain.Notification
	if in.CohortID != "" {
		cm, err := s.cohorts.GetCohortMembers(ctx, in.CohortID)
		if err != nil {
			return nil, nil, err
		}
		if d.Name == "" {
			d.Name = cm.Cohort.Name
		}
		if d.Description == "" {
			d.Description = cm.Cohort.Description
		}
		d.Members = domain.NewMemberList(cm.Members...).Snapshot()
		notifications = cm.Notifications
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := draft.Create(ctx, tx, d); err != nil {
		return nil, nil, err
	}
	if err := member.Append(ctx, tx, d.ID, d.Members); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info().Str("module", "service.draft").Str("draft_id", d.ID.String()).
		Str("cohort_id", d.CohortID).Int("members", len(d.Members)).Msg("created draft")
	return d, notifications, nil
}

// GetDraft retrieves a draft with its members.
func (s *DraftService) GetDraft(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	return s.load(ctx, s.db, id)
}

// DeleteDraft removes a draft and its members.
func (s *DraftService) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	if err := draft.Delete(ctx, s.db, id); err != nil {
		if err == sql.ErrNoRows {
			return ErrDraftNotFound
		}
		return err
	}
	log.Info().Str("module", "service.draft").Str("draft_id", id.String()).Msg("deleted draft")
	return nil
}

// AddMembers appends members whose keys are not in the draft yet.
// It returns the updated draft and the number of members added.
func (s *DraftService) AddMembers(ctx context.Context, id uuid.UUID, members []domain.Member) (*domain.Draft, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.lock(ctx, tx, id); err != nil {
		return nil, 0, err
	}

	existing, err := member.ExistingKeys(ctx, tx, id, domain.MemberKeys(members))
	if err != nil {
		return nil, 0, err
	}

	pending := domain.NewMemberList()
	for _, m := range members {
		if !existing[m.Key] {
			pending.Add(m)
		}
	}
	added := pending.Snapshot()

	if len(added) > 0 {
		if err := member.Append(ctx, tx, id, added); err != nil {
			return nil, 0, err
		}
		if err := draft.Touch(ctx, tx, id); err != nil {
			return nil, 0, fmt.Errorf("failed to touch draft: %w", err)
		}
	}

	d, err := s.load(ctx, tx, id)
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return d, len(added), nil
}

// RemoveMember drops the member with key from the draft.
func (s *DraftService) RemoveMember(ctx context.Context, id uuid.UUID, key string) (*domain.Draft, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.lock(ctx, tx, id); err != nil {
		return nil, err
	}

	if err := member.Remove(ctx, tx, id, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if err := draft.Touch(ctx, tx, id); err != nil {
		return nil, fmt.Errorf("failed to touch draft: %w", err)
	}

	d, err := s.load(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return d, nil
}

// PopulateDraft replaces the members of a draft with decorated records of keys.
func (s *DraftService) PopulateDraft(ctx context.Context, id uuid.UUID, keys []string) (*domain.Draft, []domain.Notification, error) {
	if _, err := s.GetDraft(ctx, id); err != nil {
		return nil, nil, err
	}

	members, notifications, err := s.cohorts.DecorateKeys(ctx, keys)
	if err != nil {
		return nil, nil, err
	}
	members = domain.NewMemberList(members...).Snapshot()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.lock(ctx, tx, id); err != nil {
		return nil, nil, err
	}
	if err := member.ReplaceAll(ctx, tx, id, members); err != nil {
		return nil, nil, err
	}
	if err := draft.Touch(ctx, tx, id); err != nil {
		return nil, nil, fmt.Errorf("failed to touch draft: %w", err)
	}

	d, err := s.load(ctx, tx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info().Str("module", "service.draft").Str("draft_id", id.String()).
		Int("members", len(d.Members)).Int("notifications", len(notifications)).Msg("populated draft")
	return d, notifications, nil
}

// CommitDraft saves the draft as a cohort. A draft that has never been
// committed creates a new cohort, later commits update it.
func (s *DraftService) CommitDraft(ctx context.Context, id uuid.UUID) (*domain.Cohort, error) {
	d, err := s.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(d.Members) == 0 {
		return nil, ErrDraftEmpty
	}

	var cohort *domain.Cohort
	if d.CohortID == "" {
		cohort, err = s.cohorts.CreateCohort(ctx, d.CohortInput())
	} else {
		cohort, err = s.cohorts.UpdateCohort(ctx, d.CohortInput())
	}
	if err != nil {
		return nil, err
	}

	if cohort.ID != "" && cohort.ID != d.CohortID {
		if err := draft.SetCohortID(ctx, s.db, id, cohort.ID); err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrDraftNotFound
			}
			return nil, err
		}
	}

	log.Info().Str("module", "service.draft").Str("draft_id", id.String()).
		Str("cohort_id", cohort.ID).Msg("committed draft")
	return cohort, nil
}

func (s *DraftService) lock(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	if _, err := draft.GetForUpdate(ctx, tx, id); err != nil {
		if err == sql.ErrNoRows {
			return ErrDraftNotFound
		}
		return err
	}
	return nil
}

func (s *DraftService) load(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.Draft, error) {
	d, err := draft.Get(ctx, exec, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	members, err := member.List(ctx, exec, id)
	if err != nil {
		return nil, err
	}
	d.Members = members
	return d, nil
}
