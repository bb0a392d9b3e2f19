package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/eureka"
	"github.com/mishasvintus/cohort_gateway/internal/expression"
)

// CohortRepository is the upstream storage of cohorts.
type CohortRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Get(ctx context.Context, id string) (*domain.Destination, error)
	Remove(ctx context.Context, id string) error
	Create(ctx context.Context, in domain.CohortInput) (*domain.Destination, error)
	Update(ctx context.Context, in domain.CohortInput) (*domain.Destination, error)
	GetConceptSummary(ctx context.Context, key string) (*domain.ConceptSummary, error)
	GetPhenotypesOfCohort(ctx context.Context, cohort *domain.Cohort) ([]domain.ConceptSummary, error)
	expression.ConceptLookup
	expression.PhenotypeLookup
}

// CohortMembers is a cohort together with its decorated member list.
type CohortMembers struct {
	Cohort        *domain.Cohort
	Members       []domain.Member
	Notifications []domain.Notification
}

// CohortService handles cohort business logic.
type CohortService struct {
	repo CohortRepository
}

// NewCohortService creates a new cohort service.
func NewCohortService(repo CohortRepository) *CohortService {
	return &CohortService{repo: repo}
}

// ListCohorts returns summaries of all cohorts.
func (s *CohortService) ListCohorts(ctx context.Context) ([]domain.CohortSummary, error) {
	destinations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}

	summaries := make([]domain.CohortSummary, len(destinations))
	for i, d := range destinations {
		summaries[i] = domain.CohortSummary{
			ID:          string(d.ID),
			Name:        d.Name,
			Description: d.Description,
			OwnerUserID: d.OwnerUserID,
		}
	}
	return summaries, nil
}

// GetCohort retrieves a cohort by ID.
func (s *CohortService) GetCohort(ctx context.Context, id string) (*domain.Cohort, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if eureka.IsNotFound(err) {
			return nil, ErrCohortNotFound
		}
		return nil, fmt.Errorf("failed to get cohort: %w", err)
	}
	return domain.CohortFromDestination(d), nil
}

// GetCohortMembers retrieves a cohort and resolves display records of its members.
func (s *CohortService) GetCohortMembers(ctx context.Context, id string) (*CohortMembers, error) {
	cohort, err := s.GetCohort(ctx, id)
	if err != nil {
		return nil, err
	}

	members, notifications, err := s.DecorateKeys(ctx, expression.Flatten(cohort.Root))
	if err != nil {
		return nil, err
	}

	return &CohortMembers{
		Cohort:        cohort,
		Members:       members,
		Notifications: notifications,
	}, nil
}

// DecorateKeys resolves display records for keys. Unresolvable keys are kept
// as placeholders and reported as notifications.
func (s *CohortService) DecorateKeys(ctx context.Context, keys []string) ([]domain.Member, []domain.Notification, error) {
	list := domain.NewMemberList()
	collector := &expression.Collector{}

	err := expression.Decorate(ctx, keys, s.repo, s.repo, list, expression.Multi{collector, expression.LogNotifier{}})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decorate members: %w", err)
	}
	return list.Snapshot(), collector.Notifications(), nil
}

// CreateCohort creates a new cohort from an ordered member list.
func (s *CohortService) CreateCohort(ctx context.Context, in domain.CohortInput) (*domain.Cohort, error) {
	d, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create cohort: %w", err)
	}

	log.Info().Str("module", "service.cohort").Str("cohort_id", string(d.ID)).
		Str("owner", domain.FormatOwner(in.OwnerUserID)).Int("members", len(in.Members)).Msg("created cohort")
	return domain.CohortFromDestination(d), nil
}

// UpdateCohort replaces the cohort identified by in.ID.
func (s *CohortService) UpdateCohort(ctx context.Context, in domain.CohortInput) (*domain.Cohort, error) {
	d, err := s.repo.Update(ctx, in)
	if err != nil {
		if eureka.IsNotFound(err) {
			return nil, ErrCohortNotFound
		}
		return nil, fmt.Errorf("failed to update cohort: %w", err)
	}

	log.Info().Str("module", "service.cohort").Str("cohort_id", in.ID).Int("members", len(in.Members)).Msg("updated cohort")
	return domain.CohortFromDestination(d), nil
}

// DeleteCohort removes a cohort.
func (s *CohortService) DeleteCohort(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		if eureka.IsNotFound(err) {
			return ErrCohortNotFound
		}
		return fmt.Errorf("failed to delete cohort: %w", err)
	}

	log.Info().Str("module", "service.cohort").Str("cohort_id", id).Msg("deleted cohort")
	return nil
}

// GetConceptSummary returns the summary of a concept or phenotype.
func (s *CohortService) GetConceptSummary(ctx context.Context, key string) (*domain.ConceptSummary, error) {
	summary, err := s.repo.GetConceptSummary(ctx, key)
	if err != nil {
		if eureka.IsNotFound(err) {
			return nil, ErrConceptNotFound
		}
		return nil, fmt.Errorf("failed to get concept summary: %w", err)
	}
	return summary, nil
}

// GetCohortPhenotypes returns summaries of every member of a cohort.
// It fails if any single lookup fails.
func (s *CohortService) GetCohortPhenotypes(ctx context.Context, id string) ([]domain.ConceptSummary, error) {
	cohort, err := s.GetCohort(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.GetPhenotypesOfCohort(ctx, cohort)
	if err != nil {
		return nil, fmt.Errorf("failed to get phenotypes of cohort %s: %w", id, err)
	}
	return summaries, nil
}
