package membership

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
)

func member(groupID id.GroupID, at time.Time) *models.Membership {
	return &models.Membership{GroupID: groupID, UserID: id.UserID(uuid.New()), JoinedAt: at}
}

func TestInMemoryLedger(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	groupID := id.NewGroupID()
	otherGroup := id.NewGroupID()
	now := time.Now()

	first := member(groupID, now)
	second := member(groupID, now.Add(time.Minute))
	require.NoError(t, store.Add(ctx, second))
	require.NoError(t, store.Add(ctx, first))
	require.NoError(t, store.Add(ctx, member(otherGroup, now)))

	t.Run("duplicate admission conflicts", func(t *testing.T) {
		assert.ErrorIs(t, store.Add(ctx, first), sentinel.ErrConflict)
	})

	t.Run("membership is scoped by group", func(t *testing.T) {
		ok, err := store.IsMember(ctx, groupID, first.UserID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.IsMember(ctx, otherGroup, first.UserID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lists by join time", func(t *testing.T) {
		members, err := store.ListMembers(ctx, groupID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, first.UserID, members[0].UserID)
		assert.Equal(t, second.UserID, members[1].UserID)

		n, err := store.Count(ctx, groupID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, groupID, second.UserID))
		assert.ErrorIs(t, store.Remove(ctx, groupID, second.UserID), sentinel.ErrNotFound)
	})

	t.Run("delete by group leaves other groups alone", func(t *testing.T) {
		n, err := store.DeleteByGroup(ctx, groupID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		remaining, err := store.Count(ctx, otherGroup)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
	})
}

func TestInMemorySnapshotRestore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	groupID := id.NewGroupID()
	kept := member(groupID, time.Now())
	require.NoError(t, store.Add(ctx, kept))

	snap := store.Snapshot()
	require.NoError(t, store.Add(ctx, member(groupID, time.Now())))
	require.NoError(t, store.Remove(ctx, groupID, kept.UserID))

	store.Restore(snap)
	n, err := store.Count(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	ok, _ := store.IsMember(ctx, groupID, kept.UserID)
	assert.True(t, ok)
}
