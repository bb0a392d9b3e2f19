package eureka_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/eureka"
	"github.com/mishasvintus/cohort_gateway/internal/expression"
)

func newRepository(t *testing.T, handler http.HandlerFunc) *eureka.CohortRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := eureka.New(srv.URL)
	require.NoError(t, err)
	return eureka.NewCohortRepository(client)
}

func members(keys ...string) []domain.Member {
	out := make([]domain.Member, len(keys))
	for i, k := range keys {
		out[i] = domain.Member{Key: k, DisplayName: k}
	}
	return out
}

func TestCohortRepository_List(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/destinations", r.URL.Path)
		assert.Equal(t, "COHORT", r.URL.Query().Get("type"))
		_, _ = io.WriteString(w, `[
			{"id":1,"name":"first","type":"COHORT","cohort":{"id":11,"node":{"type":"Literal","name":"a"}}},
			{"id":2,"name":"second","type":"COHORT","cohort":null}
		]`)
	})

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ID("1"), got[0].ID)
	assert.Equal(t, domain.NewLiteral("a"), got[0].Root())
	assert.Nil(t, got[1].Root())
}

func TestCohortRepository_Get(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/destinations/42", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":42,"name":"c","cohort":{"id":null,"node":{
			"id":null,"type":"BinaryOperator","op":"OR",
			"left_node":{"type":"Literal","name":"a"},
			"right_node":{"type":"Literal","name":"b"}}}}`)
	})

	got, err := repo.Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, expression.Flatten(got.Root()))
}

func TestCohortRepository_Remove(t *testing.T) {
	var called atomic.Bool
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/destinations/7", r.URL.Path)
		called.Store(true)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, repo.Remove(context.Background(), "7"))
	assert.True(t, called.Load())
}

func TestCohortRepository_GetConceptSummary(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/concepts/ICD9:250", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("summary"))
		_, _ = io.WriteString(w, `{"key":"ICD9:250","displayName":"Diabetes","inDataSource":true,"isParent":true}`)
	})

	got, err := repo.GetConceptSummary(context.Background(), "ICD9:250")
	require.NoError(t, err)
	assert.Equal(t, &domain.ConceptSummary{Key: "ICD9:250", DisplayName: "Diabetes", InDataSource: true, Parent: true}, got)
}

func TestCohortRepository_Create(t *testing.T) {
	t.Run("payload carries built node and fixed defaults", func(t *testing.T) {
		var body map[string]any
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/destinations/", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":99,"name":"diabetics","type":"COHORT","cohort":{"id":5,"node":null}}`)
		})

		owner := int64(3)
		got, err := repo.Create(context.Background(), domain.CohortInput{
			ID:          "ignored",
			Name:        "diabetics",
			Description: "all diabetics",
			OwnerUserID: &owner,
			Members:     members("a", "b", "c"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ID("99"), got.ID)

		assert.Nil(t, body["id"])
		assert.Equal(t, "diabetics", body["name"])
		assert.Equal(t, "all diabetics", body["description"])
		assert.Equal(t, "COHORT", body["type"])
		assert.Nil(t, body["ownerUserId"])
		for _, key := range []string{"phenotypeFields", "created_at", "updated_at", "links"} {
			assert.Contains(t, body, key)
			assert.Nil(t, body[key], key)
		}
		for _, key := range []string{"read", "write", "execute"} {
			assert.Equal(t, false, body[key], key)
		}

		cohort, ok := body["cohort"].(map[string]any)
		require.True(t, ok)
		assert.Nil(t, cohort["id"])

		expected, err := domain.MarshalNode(expression.Build([]string{"a", "b", "c"}))
		require.NoError(t, err)
		actual, err := json.Marshal(cohort["node"])
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), string(actual))
	})

	t.Run("empty member list sends null node", func(t *testing.T) {
		var body map[string]any
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = io.WriteString(w, `{"id":1}`)
		})

		_, err := repo.Create(context.Background(), domain.CohortInput{Name: "empty"})
		require.NoError(t, err)
		cohort := body["cohort"].(map[string]any)
		assert.Contains(t, cohort, "node")
		assert.Nil(t, cohort["node"])
	})

	t.Run("empty body follows location", func(t *testing.T) {
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				w.Header().Set("Location", "http://upstream/destinations/123")
				w.WriteHeader(http.StatusCreated)
			case http.MethodGet:
				assert.Equal(t, "/destinations/123", r.URL.Path)
				_, _ = io.WriteString(w, `{"id":123,"name":"n"}`)
			}
		})

		got, err := repo.Create(context.Background(), domain.CohortInput{Name: "n", Members: members("a")})
		require.NoError(t, err)
		assert.Equal(t, domain.ID("123"), got.ID)
	})

	t.Run("empty body without location fails", func(t *testing.T) {
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		_, err := repo.Create(context.Background(), domain.CohortInput{Name: "n"})
		assert.Error(t, err)
	})
}

func TestCohortRepository_Update(t *testing.T) {
	var body map[string]any
	var gets atomic.Int32
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "/destinations/", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			gets.Add(1)
			assert.Equal(t, "/destinations/15", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":15,"name":"renamed","cohort":{"node":{"type":"Literal","name":"b"}}}`)
		}
	})

	owner := int64(8)
	got, err := repo.Update(context.Background(), domain.CohortInput{
		ID:          "15",
		Name:        "renamed",
		Description: "d",
		OwnerUserID: &owner,
		Members:     members("b"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("15"), got.ID)
	assert.Equal(t, int32(1), gets.Load())

	assert.Equal(t, "15", body["id"])
	assert.Equal(t, float64(eureka.DefaultUpdateOwnerUserID), body["ownerUserId"])
	assert.Equal(t, "COHORT", body["type"])
	node := body["cohort"].(map[string]any)["node"].(map[string]any)
	assert.Equal(t, "Literal", node["type"])
	assert.Equal(t, "b", node["name"])
}

func TestCohortRepository_GetPhenotypesOfCohort(t *testing.T) {
	cohort := &domain.Cohort{ID: "1", Root: expression.Build([]string{"a", "USER:b", "c"})}

	t.Run("results keep literal order", func(t *testing.T) {
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimPrefix(r.URL.Path, "/concepts/")
			_ = json.NewEncoder(w).Encode(map[string]any{"key": key, "displayName": strings.ToUpper(key)})
		})

		got, err := repo.GetPhenotypesOfCohort(context.Background(), cohort)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "a", got[0].Key)
		assert.Equal(t, "USER:b", got[1].Key)
		assert.Equal(t, "C", got[2].DisplayName)
	})

	t.Run("one failing lookup fails the call", func(t *testing.T) {
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimPrefix(r.URL.Path, "/concepts/")
			if key == "USER:b" {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"message":"no such phenotype"}`)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"key": key})
		})

		got, err := repo.GetPhenotypesOfCohort(context.Background(), cohort)
		require.Error(t, err)
		assert.Nil(t, got)

		var agg *eureka.AggregateLookupFailure
		require.True(t, errors.As(err, &agg))
		assert.Equal(t, "USER:b", agg.Key)
		assert.True(t, eureka.IsNotFound(err))
	})

	t.Run("empty cohort yields empty result", func(t *testing.T) {
		repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.URL.Path)
		})

		got, err := repo.GetPhenotypesOfCohort(context.Background(), &domain.Cohort{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCohortRepository_Lookups(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/concepts":
			assert.Equal(t, []string{"ICD9:250", "LOINC:1"}, r.URL.Query()["key"])
			_, _ = io.WriteString(w, `[{"key":"ICD9:250","displayName":"Diabetes","type":"CATEGORIZATION"}]`)
		case r.URL.Path == "/phenotypes/USER:ckd":
			_, _ = io.WriteString(w, `{"id":4,"key":"USER:ckd","displayName":"CKD","type":"SEQUENCE"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	nodes, err := repo.GetTreeNodes(context.Background(), []string{"ICD9:250", "LOINC:1"})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Diabetes", nodes[0].DisplayName)

	p, err := repo.GetPhenotype(context.Background(), "USER:ckd")
	require.NoError(t, err)
	assert.Equal(t, "CKD", p.DisplayName)
	assert.Equal(t, domain.ID("4"), p.ID)

	_, err = repo.GetPhenotype(context.Background(), "USER:missing")
	assert.True(t, eureka.IsNotFound(err))
}

func TestCohortRepository_LargeCohort(t *testing.T) {
	// One nesting level per member, past the limit of the generic JSON codecs.
	keys := make([]string, 12000)
	for i := range keys {
		keys[i] = fmt.Sprintf("LOINC:%d", i)
	}

	stored, err := eureka.NewCohortPayload(domain.CohortInput{Name: "large", Members: members(keys...)}).EncodeJSON()
	require.NoError(t, err)

	var posted atomic.Int64
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			posted.Store(int64(len(body)))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write(body)
		case http.MethodGet:
			if r.URL.Path == "/destinations" {
				_, _ = w.Write(append(append([]byte("["), stored...), ']'))
				return
			}
			_, _ = w.Write(stored)
		}
	})

	start := time.Now()

	created, err := repo.Create(context.Background(), domain.CohortInput{Name: "large", Members: members(keys...)})
	require.NoError(t, err)
	assert.Equal(t, keys, expression.Flatten(created.Root()))
	assert.Equal(t, int64(len(stored)), posted.Load())

	got, err := repo.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, keys, expression.Flatten(got.Root()))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keys, expression.Flatten(list[0].Root()))

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, bytes.HasPrefix(stored, []byte(`{"id":null,`)))
}
