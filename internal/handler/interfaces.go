package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/service"
)

// CohortServiceInterface defines the interface for cohort operations.
type CohortServiceInterface interface {
	ListCohorts(ctx context.Context) ([]domain.CohortSummary, error)
	GetCohort(ctx context.Context, id string) (*domain.Cohort, error)
	GetCohortMembers(ctx context.Context, id string) (*service.CohortMembers, error)
	GetCohortPhenotypes(ctx context.Context, id string) ([]domain.ConceptSummary, error)
	CreateCohort(ctx context.Context, in domain.CohortInput) (*domain.Cohort, error)
	UpdateCohort(ctx context.Context, in domain.CohortInput) (*domain.Cohort, error)
	DeleteCohort(ctx context.Context, id string) error
	GetConceptSummary(ctx context.Context, key string) (*domain.ConceptSummary, error)
	DecorateKeys(ctx context.Context, keys []string) ([]domain.Member, []domain.Notification, error)
}

// DraftServiceInterface defines the interface for draft operations.
type DraftServiceInterface interface {
	CreateDraft(ctx context.Context, in domain.DraftInput) (*domain.Draft, []domain.Notification, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	AddMembers(ctx context.Context, id uuid.UUID, members []domain.Member) (*domain.Draft, int, error)
	RemoveMember(ctx context.Context, id uuid.UUID, key string) (*domain.Draft, error)
	PopulateDraft(ctx context.Context, id uuid.UUID, keys []string) (*domain.Draft, []domain.Notification, error)
	CommitDraft(ctx context.Context, id uuid.UUID) (*domain.Cohort, error)
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
