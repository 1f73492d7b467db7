package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:                 id,
		AccessToken:        "access",
		RefreshToken:       "refresh",
		AccessTokenExpires: now.Add(30 * time.Minute).UnixMilli(),
		UserID:             7,
		Email:              "admin@hotel.example",
		FullName:           "Operator",
		Role:               "admin",
		CreatedAt:          now,
		ExpiresAt:          now.Add(7 * 24 * time.Hour),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sess := newTestSession("01ABC")

	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Load(ctx, "01ABC")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, loaded.UserID)
	assert.Equal(t, sess.AccessToken, loaded.AccessToken)

	// Load returns a copy; mutating it must not affect the stored value.
	loaded.AccessToken = "tampered"
	again, err := store.Load(ctx, "01ABC")
	require.NoError(t, err)
	assert.Equal(t, "access", again.AccessToken)
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sess := newTestSession("01DEF")

	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Clear(ctx, "01DEF"))

	_, err := store.Load(ctx, "01DEF")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sess := newTestSession("01GHI")
	sess.ExpiresAt = time.Now().Add(-time.Minute)

	require.NoError(t, store.Save(ctx, sess))

	_, err := store.Load(ctx, "01GHI")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
