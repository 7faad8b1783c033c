package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(rdb, ttl), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := testStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), adminID)
}

func TestStoreUnknownToken(t *testing.T) {
	store, _ := testStore(t, time.Hour)

	_, err := store.Get(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRevoke(t *testing.T) {
	store, _ := testStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// double revoke is a no-op
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestStoreExpiry(t *testing.T) {
	store, mr := testStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreTokensAreUnique(t *testing.T) {
	store, _ := testStore(t, time.Hour)
	ctx := context.Background()

	a, err := store.Create(ctx, 1)
	require.NoError(t, err)
	b, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
