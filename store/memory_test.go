package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumawisp/luma"
)

func TestMemStoreUserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	u, err := s.CreateUser(ctx, "stella", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "stella", u.Username)
	assert.Equal(t, 0, u.Wispstars)
	assert.Equal(t, 0, u.CrystalCrumbs)
	assert.Equal(t, luma.RealmAether, u.CurrentRealm)

	byName, err := s.GetUserByUsername(ctx, "stella")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.ID, byName.ID)

	absent, err := s.GetUser(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMemStoreUpdateUserMergesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	u, err := s.CreateUser(ctx, "orin", "hash")
	require.NoError(t, err)

	stars := 3
	realm := luma.RealmFire
	updated, err := s.UpdateUser(ctx, u.ID, UserUpdate{Wispstars: &stars, CurrentRealm: &realm})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 3, updated.Wispstars)
	assert.Equal(t, luma.RealmFire, updated.CurrentRealm)
	assert.Equal(t, 0, updated.CrystalCrumbs)
	assert.Equal(t, "orin", updated.Username)
	assert.Equal(t, "hash", updated.Password)

	missing, err := s.UpdateUser(ctx, "nope", UserUpdate{Wispstars: &stars})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemStoreConversationRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	first := luma.Message{ID: "m1", Role: luma.RoleUser, Content: "hello", Timestamp: "2025-01-01T00:00:00Z", Realm: luma.RealmWater}
	conv, err := s.CreateConversation(ctx, "user-1", []luma.Message{first}, luma.RealmWater)
	require.NoError(t, err)
	require.NotNil(t, conv)

	second := luma.Message{ID: "m2", Role: luma.RoleLuma, Content: "Flow into the gentle Water Realm!", Timestamp: "2025-01-01T00:00:01Z", Realm: luma.RealmWater}
	_, err = s.UpdateConversation(ctx, conv.ID, append(conv.Messages, second))
	require.NoError(t, err)

	got, err := s.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, first, got.Messages[0])
	assert.Equal(t, second, got.Messages[1])

	byUser, err := s.GetConversationsByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	absent, err := s.GetConversation(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, absent)

	missing, err := s.UpdateConversation(ctx, "nope", nil)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemStoreConversationIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	msgs := []luma.Message{{ID: "m1", Role: luma.RoleUser, Content: "hi"}}
	conv, err := s.CreateConversation(ctx, "user-1", msgs, luma.RealmAir)
	require.NoError(t, err)

	// Mutating the caller's slice must not leak into the store.
	msgs[0].Content = "changed"

	got, err := s.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Messages[0].Content)
}

func TestMemStoreChallenges(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	ch, err := s.CreateChallenge(ctx, "user-1", "breathwork", luma.RealmEarth, nil)
	require.NoError(t, err)
	assert.Nil(t, ch.Completed)

	done, err := s.CompleteChallenge(ctx, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.NotNil(t, done.Completed)

	list, err := s.GetUserChallenges(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "breathwork", list[0].ChallengeType)

	missing, err := s.CompleteChallenge(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
