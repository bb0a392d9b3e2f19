package eureka

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/expression"
)

// CohortRepository handles cohort operations against the upstream
// destinations collection.
type CohortRepository struct {
	client *Client
}

// NewCohortRepository creates a new cohort repository.
func NewCohortRepository(client *Client) *CohortRepository {
	return &CohortRepository{client: client}
}

// List returns all cohort destinations.
func (r *CohortRepository) List(ctx context.Context) ([]domain.Destination, error) {
	path := "/destinations?type=" + url.QueryEscape(domain.DestinationTypeCohort)
	var out domain.Destinations
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = domain.Destinations{}
	}
	return out, nil
}

// Get retrieves a cohort destination by ID.
func (r *CohortRepository) Get(ctx context.Context, id string) (*domain.Destination, error) {
	var out domain.Destination
	if _, err := r.client.do(ctx, http.MethodGet, "/destinations/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes a cohort destination.
func (r *CohortRepository) Remove(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/destinations/"+url.PathEscape(id), nil, nil)
	return err
}

// GetConceptSummary returns the summary of a concept or phenotype.
func (r *CohortRepository) GetConceptSummary(ctx context.Context, key string) (*domain.ConceptSummary, error) {
	path := "/concepts/" + url.PathEscape(key) + "?summary=true"
	var out domain.ConceptSummary
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new cohort and returns the server's representation.
func (r *CohortRepository) Create(ctx context.Context, in domain.CohortInput) (*domain.Destination, error) {
	in.ID = ""
	payload := NewCohortPayload(in)

	var out domain.Destination
	resp, err := r.client.do(ctx, http.MethodPost, "/destinations/", payload, &out)
	if err != nil {
		return nil, err
	}
	if !resp.Empty {
		return &out, nil
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, fmt.Errorf("create cohort: server returned neither a body nor a location")
	}
	log.Debug().Str("module", "eureka").Str("location", location).Msg("fetching created cohort")
	return r.Get(ctx, lastPathSegment(location))
}

// Update replaces an existing cohort identified by in.ID.
func (r *CohortRepository) Update(ctx context.Context, in domain.CohortInput) (*domain.Destination, error) {
	payload := NewCohortUpdatePayload(in)

	var out domain.Destination
	resp, err := r.client.do(ctx, http.MethodPut, "/destinations/", payload, &out)
	if err != nil {
		return nil, err
	}
	if !resp.Empty {
		return &out, nil
	}
	return r.Get(ctx, in.ID)
}

// GetPhenotypesOfCohort looks up the summary of every literal of the
// cohort's expression. Lookups run concurrently; results keep the order of
// the literals. The first failed lookup fails the whole call.
func (r *CohortRepository) GetPhenotypesOfCohort(ctx context.Context, cohort *domain.Cohort) ([]domain.ConceptSummary, error) {
	var root domain.Node
	if cohort != nil {
		root = cohort.Root
	}
	names := expression.Flatten(root)

	out := make([]domain.ConceptSummary, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			s, err := r.GetConceptSummary(gctx, name)
			if err != nil {
				return &AggregateLookupFailure{Key: name, Err: err}
			}
			out[i] = *s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultUpdateOwnerUserID is the owner sent with every update.
const DefaultUpdateOwnerUserID int64 = 1

// NewCohortPayload builds the wire record for a create request.
// ownerUserId is sent as null, whatever the input carries.
func NewCohortPayload(in domain.CohortInput) domain.Destination {
	return newPayload(in, nil)
}

// NewCohortUpdatePayload builds the wire record for a replace request.
// The input owner is not forwarded; DefaultUpdateOwnerUserID is sent instead.
func NewCohortUpdatePayload(in domain.CohortInput) domain.Destination {
	owner := DefaultUpdateOwnerUserID
	return newPayload(in, &owner)
}

func newPayload(in domain.CohortInput, owner *int64) domain.Destination {
	return domain.Destination{
		ID:          domain.ID(in.ID),
		Name:        in.Name,
		Description: in.Description,
		Type:        domain.DestinationTypeCohort,
		OwnerUserID: owner,
		Cohort: &domain.CohortDefinition{
			Node: expression.BuildFromMembers(in.Members),
		},
		Read:    false,
		Write:   false,
		Execute: false,
	}
}
