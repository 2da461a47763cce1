package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/store/memory"
)

func TestStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	entry := &domain.CacheEntry{
		ID:        0,
		Query:     "what is the capital of France?",
		Answer:    "Paris",
		Embedding: []float64{0.1, 0.2, 0.3},
	}

	require.NoError(t, store.Put(ctx, entry))

	got, err := store.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "Paris", got.Answer)
	require.Equal(t, entry.Embedding, got.Embedding)
}

func TestStore_PutRejectsNil(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.Error(t, store.Put(ctx, nil))
}

func TestStore_PutRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Put(ctx, &domain.CacheEntry{ID: 0, Answer: "first"}))

	err := store.Put(ctx, &domain.CacheEntry{ID: 0, Answer: "second"})
	require.Error(t, err)

	got, err := store.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "first", got.Answer)
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	got, err := store.Get(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, got)
}

func TestStore_Touch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Put(ctx, &domain.CacheEntry{ID: 0}))
	require.NoError(t, store.Touch(ctx, 0))
	require.NoError(t, store.Touch(ctx, 0))

	got, err := store.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.HitCount)
}

func TestStore_TouchMissing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.ErrorIs(t, store.Touch(ctx, 42), domain.ErrNotFound)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Put(ctx, &domain.CacheEntry{ID: 0, Answer: "original"}))

	got, err := store.Get(ctx, 0)
	require.NoError(t, err)
	got.Answer = "mutated"

	again, err := store.Get(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "original", again.Answer)
}

func TestStore_SizeAndClear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Put(ctx, &domain.CacheEntry{ID: 0}))
	require.NoError(t, store.Put(ctx, &domain.CacheEntry{ID: 1}))

	size, err := store.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), size)

	require.NoError(t, store.Clear(ctx))

	size, err = store.Size(ctx)
	require.NoError(t, err)
	require.Zero(t, size)
}
