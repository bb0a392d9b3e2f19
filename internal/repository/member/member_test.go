package member_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/repository/draft"
	"github.com/mishasvintus/cohort_gateway/internal/repository/member"
	"github.com/mishasvintus/cohort_gateway/internal/repository/testdb"
)

func newDraft(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	d := &domain.Draft{ID: uuid.New(), Name: "draft"}
	require.NoError(t, draft.Create(context.Background(), db, d))
	return d.ID
}

func TestAppendAndList(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()
	id := newDraft(t, db)

	leaf := "LEAF"
	require.NoError(t, member.Append(ctx, db, id, []domain.Member{
		{Key: "A", DisplayName: "Alpha", Type: &leaf},
		{Key: "B", DisplayName: "Beta"},
	}))
	require.NoError(t, member.Append(ctx, db, id, []domain.Member{
		{Key: "A", DisplayName: "duplicate"},
		{Key: "C", DisplayName: "Gamma"},
	}))

	members, err := member.List(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, domain.MemberKeys(members))
	assert.Equal(t, "Alpha", members[0].DisplayName)
	require.NotNil(t, members[0].Type)
	assert.Equal(t, "LEAF", *members[0].Type)
	assert.Nil(t, members[1].Type)
}

func TestRemoveAndReplace(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()
	id := newDraft(t, db)

	require.NoError(t, member.Append(ctx, db, id, []domain.Member{{Key: "A"}, {Key: "B"}}))

	require.NoError(t, member.Remove(ctx, db, id, "A"))
	assert.ErrorIs(t, member.Remove(ctx, db, id, "A"), sql.ErrNoRows)

	require.NoError(t, member.ReplaceAll(ctx, db, id, []domain.Member{{Key: "Z"}, {Key: "Y"}}))

	members, err := member.List(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "Y"}, domain.MemberKeys(members))
}

func TestExistingKeys(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()
	id := newDraft(t, db)

	require.NoError(t, member.Append(ctx, db, id, []domain.Member{{Key: "A"}, {Key: "B"}}))

	existing, err := member.ExistingKeys(ctx, db, id, []string{"B", "C"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"B": true}, existing)

	existing, err = member.ExistingKeys(ctx, db, id, nil)
	require.NoError(t, err)
	assert.Empty(t, existing)
}

func TestAppend_UnknownDraft(t *testing.T) {
	db := testdb.Setup(t)

	err := member.Append(context.Background(), db, uuid.New(), []domain.Member{{Key: "A"}})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
