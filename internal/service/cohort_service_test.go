package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/eureka"
	"github.com/mishasvintus/cohort_gateway/internal/expression"
	"github.com/mishasvintus/cohort_gateway/internal/service"
	servicemocks "github.com/mishasvintus/cohort_gateway/internal/service/mocks"
)

func strPtr(s string) *string { return &s }

func destinationOf(id string, keys ...string) *domain.Destination {
	return &domain.Destination{
		ID:     domain.ID(id),
		Name:   "cohort " + id,
		Type:   domain.DestinationTypeCohort,
		Cohort: &domain.CohortDefinition{Node: expression.Build(keys)},
	}
}

func TestCohortService_ListCohorts(t *testing.T) {
	owner := int64(7)

	tests := []struct {
		name          string
		mockSetup     func(*servicemocks.MockCohortRepository)
		expected      []domain.CohortSummary
		expectedError bool
	}{
		{
			name: "success - maps destinations to summaries",
			mockSetup: func(m *servicemocks.MockCohortRepository) {
				m.EXPECT().List(gomock.Any()).Return([]domain.Destination{
					{ID: "1", Name: "a", Description: "first", OwnerUserID: &owner},
					{ID: "2", Name: "b"},
				}, nil)
			},
			expected: []domain.CohortSummary{
				{ID: "1", Name: "a", Description: "first", OwnerUserID: &owner},
				{ID: "2", Name: "b"},
			},
		},
		{
			name: "success - empty list",
			mockSetup: func(m *servicemocks.MockCohortRepository) {
				m.EXPECT().List(gomock.Any()).Return([]domain.Destination{}, nil)
			},
			expected: []domain.CohortSummary{},
		},
		{
			name: "error - upstream failure",
			mockSetup: func(m *servicemocks.MockCohortRepository) {
				m.EXPECT().List(gomock.Any()).Return(nil, &eureka.RemoteError{Status: 500, Message: "boom"})
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := servicemocks.NewMockCohortRepository(ctrl)
			tt.mockSetup(repo)

			svc := service.NewCohortService(repo)
			got, err := svc.ListCohorts(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCohortService_GetCohort(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(*servicemocks.MockCohortRepository)
		expectedKeys  []string
		expectedError error
	}{
		{
			name: "success - decodes member expression",
			mockSetup: func(m *servicemocks.MockCohortRepository) {
				m.EXPECT().Get(gomock.Any(), "5").Return(destinationOf("5", "A", "B"), nil)
			},
			expectedKeys: []string{"A", "B"},
		},
		{
			name: "error - not found",
			mockSetup: func(m *servicemocks.MockCohortRepository) {
				m.EXPECT().Get(gomock.Any(), "5").Return(nil, &eureka.RemoteError{Status: http.StatusNotFound, Message: "Not Found"})
			},
			expectedError: service.ErrCohortNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := servicemocks.NewMockCohortRepository(ctrl)
			tt.mockSetup(repo)

			cohort, err := service.NewCohortService(repo).GetCohort(context.Background(), "5")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "5", cohort.ID)
			assert.Equal(t, tt.expectedKeys, expression.Flatten(cohort.Root))
		})
	}
}

func TestCohortService_GetCohortMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := servicemocks.NewMockCohortRepository(ctrl)

	repo.EXPECT().Get(gomock.Any(), "9").Return(destinationOf("9", "\\\\ACT\\A", "USER:3", "\\\\ACT\\Gone"), nil)
	repo.EXPECT().GetTreeNodes(gomock.Any(), []string{"\\\\ACT\\A", "\\\\ACT\\Gone"}).Return([]domain.TreeNode{
		{Key: "\\\\ACT\\A", DisplayName: "Alpha", Type: strPtr("LEAF")},
	}, nil)
	repo.EXPECT().GetPhenotype(gomock.Any(), "USER:3").Return(&domain.Phenotype{Key: "USER:3", DisplayName: "Mine"}, nil)

	got, err := service.NewCohortService(repo).GetCohortMembers(context.Background(), "9")
	require.NoError(t, err)

	assert.Equal(t, "9", got.Cohort.ID)
	require.Len(t, got.Members, 3)
	assert.Equal(t, "Alpha", got.Members[0].DisplayName)
	assert.Equal(t, "\\\\ACT\\Gone", got.Members[1].Key)
	assert.Equal(t, "Mine", got.Members[2].DisplayName)

	require.Len(t, got.Notifications, 1)
	assert.Equal(t, domain.NotificationUnknownConcept, got.Notifications[0].Kind)
	assert.Equal(t, "\\\\ACT\\Gone", got.Notifications[0].Key)
}

func TestCohortService_DecorateKeys_ConceptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := servicemocks.NewMockCohortRepository(ctrl)

	repo.EXPECT().GetTreeNodes(gomock.Any(), []string{"A"}).Return(nil, errors.New("timeout"))

	members, notifications, err := service.NewCohortService(repo).DecorateKeys(context.Background(), []string{"A"})
	assert.Error(t, err)
	assert.Nil(t, members)
	assert.Nil(t, notifications)
}

func TestCohortService_CreateAndUpdate(t *testing.T) {
	members := []domain.Member{{Key: "A"}, {Key: "B"}}

	t.Run("create returns stored cohort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := servicemocks.NewMockCohortRepository(ctrl)
		in := domain.CohortInput{Name: "n", Members: members}

		repo.EXPECT().Create(gomock.Any(), in).Return(destinationOf("11", "A", "B"), nil)

		cohort, err := service.NewCohortService(repo).CreateCohort(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "11", cohort.ID)
		assert.Equal(t, []string{"A", "B"}, expression.Flatten(cohort.Root))
	})

	t.Run("create failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := servicemocks.NewMockCohortRepository(ctrl)
		upstream := &eureka.RemoteError{Status: 400, Message: "name taken"}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, upstream)

		_, err := service.NewCohortService(repo).CreateCohort(context.Background(), domain.CohortInput{Name: "n"})
		var rerr *eureka.RemoteError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, "name taken", rerr.Message)
	})

	t.Run("update of missing cohort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := servicemocks.NewMockCohortRepository(ctrl)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, &eureka.RemoteError{Status: http.StatusNotFound})

		_, err := service.NewCohortService(repo).UpdateCohort(context.Background(), domain.CohortInput{ID: "3"})
		assert.ErrorIs(t, err, service.ErrCohortNotFound)
	})
}

func TestCohortService_DeleteCohort(t *testing.T) {
	tests := []struct {
		name          string
		repoErr       error
		expectedError error
	}{
		{name: "success", repoErr: nil},
		{name: "not found", repoErr: &eureka.RemoteError{Status: http.StatusNotFound}, expectedError: service.ErrCohortNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := servicemocks.NewMockCohortRepository(ctrl)
			repo.EXPECT().Remove(gomock.Any(), "4").Return(tt.repoErr)

			err := service.NewCohortService(repo).DeleteCohort(context.Background(), "4")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCohortService_GetConceptSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := servicemocks.NewMockCohortRepository(ctrl)

	repo.EXPECT().GetConceptSummary(gomock.Any(), "A").Return(&domain.ConceptSummary{Key: "A", DisplayName: "Alpha"}, nil)
	repo.EXPECT().GetConceptSummary(gomock.Any(), "Z").Return(nil, &eureka.RemoteError{Status: http.StatusNotFound})

	svc := service.NewCohortService(repo)

	summary, err := svc.GetConceptSummary(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", summary.DisplayName)

	_, err = svc.GetConceptSummary(context.Background(), "Z")
	assert.ErrorIs(t, err, service.ErrConceptNotFound)
}

func TestCohortService_GetCohortPhenotypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := servicemocks.NewMockCohortRepository(ctrl)

	repo.EXPECT().Get(gomock.Any(), "2").Return(destinationOf("2", "A", "B"), nil)
	repo.EXPECT().GetPhenotypesOfCohort(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Cohort) ([]domain.ConceptSummary, error) {
			assert.Equal(t, []string{"A", "B"}, expression.Flatten(c.Root))
			return nil, &eureka.AggregateLookupFailure{Key: "B", Err: errors.New("gone")}
		})

	_, err := service.NewCohortService(repo).GetCohortPhenotypes(context.Background(), "2")
	var agg *eureka.AggregateLookupFailure
	require.True(t, errors.As(err, &agg))
	assert.Equal(t, "B", agg.Key)
}
