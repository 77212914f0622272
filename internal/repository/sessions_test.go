package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	repo := NewSessionRepository(rdb)

	require.NoError(t, repo.Save(ctx, "jti-1", 7, time.Hour))
	assert.True(t, mr.Exists("refresh:jti-1"))

	userID, ok, err := repo.Lookup(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), userID)

	require.NoError(t, repo.Delete(ctx, "jti-1"))
	_, ok, err = repo.Lookup(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepositoryExpires(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	repo := NewSessionRepository(rdb)

	require.NoError(t, repo.Save(ctx, "jti-2", 1, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, ok, err := repo.Lookup(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
