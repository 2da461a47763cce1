package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/index/memory"
)

func TestIndex_InsertAndSearch(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{1, 0, 0}))
	require.NoError(t, index.Insert(ctx, 1, []float64{0, 1, 0}))
	require.NoError(t, index.Insert(ctx, 2, []float64{0.9, 0.1, 0}))

	matches, err := index.Search(ctx, []float64{1, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, int64(0), matches[0].ID)
	require.InEpsilon(t, 1.0, matches[0].Score, 0.001)
}

func TestIndex_SearchOrdersByDescendingSimilarity(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{0, 1}))
	require.NoError(t, index.Insert(ctx, 1, []float64{1, 0}))
	require.NoError(t, index.Insert(ctx, 2, []float64{1, 1}))

	matches, err := index.Search(ctx, []float64{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	require.Equal(t, int64(1), matches[0].ID)
	require.Equal(t, int64(2), matches[1].ID)
	require.Equal(t, int64(0), matches[2].ID)
	require.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	require.GreaterOrEqual(t, matches[1].Score, matches[2].Score)
}

func TestIndex_SearchTrimsToLimit(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	for i := int64(0); i < 5; i++ {
		require.NoError(t, index.Insert(ctx, i, []float64{float64(i + 1), 1}))
	}

	matches, err := index.Search(ctx, []float64{1, 1}, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestIndex_SearchRejectsNonPositiveLimit(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	_, err := index.Search(ctx, []float64{1, 0}, 0)
	require.Error(t, err)
}

func TestIndex_InsertRejectsNonDenseID(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{1, 0}))

	err := index.Insert(ctx, 2, []float64{0, 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-dense insert")

	size, err := index.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), size)
}

func TestIndex_InsertRejectsDimensionChange(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{1, 0, 0}))

	err := index.Insert(ctx, 1, []float64{1, 0})
	require.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestIndex_SearchRejectsDimensionChange(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{1, 0, 0}))

	_, err := index.Search(ctx, []float64{1, 0}, 1)
	require.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestIndex_InsertRejectsEmptyEmbedding(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	err := index.Insert(ctx, 0, nil)
	require.Error(t, err)
}

func TestIndex_ZeroVectorScoresZero(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{0, 0}))

	matches, err := index.Search(ctx, []float64{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Zero(t, matches[0].Score)
}

func TestIndex_Clear(t *testing.T) {
	ctx := context.Background()
	index := memory.NewIndex()

	require.NoError(t, index.Insert(ctx, 0, []float64{1, 0}))
	require.NoError(t, index.Clear(ctx))

	size, err := index.Size(ctx)
	require.NoError(t, err)
	require.Zero(t, size)

	// Dense ids restart from zero after a clear.
	require.NoError(t, index.Insert(ctx, 0, []float64{0, 1}))
}
