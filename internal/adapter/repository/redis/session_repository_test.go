package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *sessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewSessionRepository(client, ttl).(*sessionRepository)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "textlabx:session:abc", SessionKey("abc"))
	assert.Equal(t, "textlabx:session:", SessionKey(""))
}

func TestSessionRepository_Create(t *testing.T) {
	mr, repo := newTestRepository(t, time.Hour)

	require.NoError(t, repo.Create(context.Background(), "s1"))

	value, err := mr.Get("textlabx:session:s1")
	require.NoError(t, err)
	assert.Empty(t, value)
	assert.Equal(t, time.Hour, mr.TTL("textlabx:session:s1"))
}

func TestSessionRepository_GetModel(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		_, repo := newTestRepository(t, time.Hour)

		modelID, found, err := repo.GetModel(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, modelID)
	})

	t.Run("returns stored model and refreshes ttl", func(t *testing.T) {
		mr, repo := newTestRepository(t, time.Hour)
		require.NoError(t, mr.Set("textlabx:session:s1", "abc123"))
		mr.SetTTL("textlabx:session:s1", time.Minute)

		modelID, found, err := repo.GetModel(ctx, "s1")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "abc123", modelID)
		assert.Equal(t, time.Hour, mr.TTL("textlabx:session:s1"))
	})

	t.Run("expired session is not found", func(t *testing.T) {
		mr, repo := newTestRepository(t, time.Minute)
		require.NoError(t, repo.Create(ctx, "s1"))

		mr.FastForward(2 * time.Minute)

		_, found, err := repo.GetModel(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("zero ttl keeps keys without expiry", func(t *testing.T) {
		mr, repo := newTestRepository(t, 0)
		require.NoError(t, repo.Create(ctx, "s1"))

		_, found, err := repo.GetModel(ctx, "s1")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, time.Duration(0), mr.TTL("textlabx:session:s1"))
	})
}

func TestSessionRepository_SaveModel(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites existing session", func(t *testing.T) {
		mr, repo := newTestRepository(t, time.Hour)
		require.NoError(t, repo.Create(ctx, "s1"))

		saved, err := repo.SaveModel(ctx, "s1", "abc123")

		require.NoError(t, err)
		assert.True(t, saved)
		value, err := mr.Get("textlabx:session:s1")
		require.NoError(t, err)
		assert.Equal(t, "abc123", value)
		assert.Equal(t, time.Hour, mr.TTL("textlabx:session:s1"))
	})

	t.Run("does not recreate deleted session", func(t *testing.T) {
		mr, repo := newTestRepository(t, time.Hour)
		require.NoError(t, repo.Create(ctx, "s1"))
		_, err := repo.Delete(ctx, "s1")
		require.NoError(t, err)

		saved, err := repo.SaveModel(ctx, "s1", "abc123")

		require.NoError(t, err)
		assert.False(t, saved)
		assert.False(t, mr.Exists("textlabx:session:s1"))
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	mr, repo := newTestRepository(t, time.Hour)
	require.NoError(t, repo.Create(ctx, "s1"))

	deleted, err := repo.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, mr.Exists("textlabx:session:s1"))

	deleted, err = repo.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSessionRepository_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	repo := NewSessionRepository(client, time.Minute)
	ctx := context.Background()

	t.Run("get returns connection error", func(t *testing.T) {
		_, found, err := repo.GetModel(ctx, "session-1")

		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("save returns connection error", func(t *testing.T) {
		_, err := repo.SaveModel(ctx, "session-1", "abc123")
		assert.Error(t, err)
	})

	t.Run("delete returns connection error", func(t *testing.T) {
		_, err := repo.Delete(ctx, "session-1")
		assert.Error(t, err)
	})
}
