package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/domain"
	redisindex "github.com/davidbz/ember/internal/index/redis"
)

func newTestStore(t *testing.T) (*redisindex.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisindex.NewStore(client), mr
}

func TestStore_PutAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created := time.Now().Truncate(time.Second)
	err := store.Put(ctx, &domain.CacheEntry{
		ID:        0,
		Query:     "What is the capital of France?",
		Answer:    "Paris",
		CreatedAt: created,
	})
	require.NoError(t, err)

	entry, err := store.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), entry.ID)
	require.Equal(t, "What is the capital of France?", entry.Query)
	require.Equal(t, "Paris", entry.Answer)
	require.Equal(t, int64(0), entry.HitCount)
	require.Equal(t, created.Unix(), entry.CreatedAt.Unix())
}

func TestStore_PutRejectsNil(t *testing.T) {
	store, _ := newTestStore(t)

	require.Error(t, store.Put(context.Background(), nil))
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	entry, err := store.Get(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, entry)
}

func TestStore_GetRejectsCorruptFields(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.CacheEntry{
		ID:        0,
		Query:     "query",
		Answer:    "answer",
		CreatedAt: time.Now(),
	}))

	mr.HSet("entry:0", "hit_count", "not-a-number")

	entry, err := store.Get(ctx, 0)
	require.Error(t, err)
	require.Nil(t, entry)
	require.Contains(t, err.Error(), "corrupt hit_count")
}

func TestStore_Touch(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.CacheEntry{
		ID:        0,
		Query:     "query",
		Answer:    "answer",
		CreatedAt: time.Now(),
	}))

	require.NoError(t, store.Touch(ctx, 0))
	require.NoError(t, store.Touch(ctx, 0))

	entry, err := store.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), entry.HitCount)
}

func TestStore_SizeAndClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for id := int64(0); id < 3; id++ {
		require.NoError(t, store.Put(ctx, &domain.CacheEntry{
			ID:        id,
			Query:     "query",
			Answer:    "answer",
			CreatedAt: time.Now(),
		}))
	}

	size, err := store.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), size)

	require.NoError(t, store.Clear(ctx))

	size, err = store.Size(ctx)
	require.NoError(t, err)
	require.Zero(t, size)
}
