package redisadapter

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *GrantStore {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewGrantStore(client, nil)
}

func TestConsumeGrantIsOneShot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.IssueGrant(ctx, "item-1", "user-1"))

	ok, err := store.ConsumeGrant(ctx, "item-1", "user-1")
	require.NoError(t, err)
	assert.True(t, ok, "first consume should succeed")

	ok, err = store.ConsumeGrant(ctx, "item-1", "user-1")
	require.NoError(t, err)
	assert.False(t, ok, "second consume should find no grant")
}

func TestConsumeGrantWithoutIssue(t *testing.T) {
	store := newTestStore(t)

	ok, err := store.ConsumeGrant(context.Background(), "item-9", "user-9")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGrantsAreScopedToItemAndUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.IssueGrant(ctx, "item-1", "user-1"))

	ok, err := store.ConsumeGrant(ctx, "item-1", "user-2")
	require.NoError(t, err)
	assert.False(t, ok, "grant must not leak to another user")

	ok, err = store.ConsumeGrant(ctx, "item-2", "user-1")
	require.NoError(t, err)
	assert.False(t, ok, "grant must not leak to another item")

	ok, err = store.ConsumeGrant(ctx, "item-1", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
