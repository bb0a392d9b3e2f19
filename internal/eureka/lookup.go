package eureka

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
)

// GetTreeNodes resolves concept keys with a single request.
// Keys unknown to the upstream are absent from the result.
func (r *CohortRepository) GetTreeNodes(ctx context.Context, keys []string) ([]domain.TreeNode, error) {
	if len(keys) == 0 {
		return []domain.TreeNode{}, nil
	}
	q := url.Values{}
	for _, k := range keys {
		q.Add("key", k)
	}
	q.Set("summarize", "true")

	var out []domain.TreeNode
	if _, err := r.client.do(ctx, http.MethodGet, "/concepts?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPhenotype returns the phenotype identified by key.
func (r *CohortRepository) GetPhenotype(ctx context.Context, key string) (*domain.Phenotype, error) {
	path := "/phenotypes/" + url.PathEscape(key) + "?summarize=true"
	var out domain.Phenotype
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
