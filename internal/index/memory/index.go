// Package memory provides a brute-force in-memory vector index. At the scale
// this cache targets (tens of thousands of entries) a linear cosine scan is
// fast enough and keeps the index free of tuning knobs.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/davidbz/ember/internal/domain"
)

// Index is a flat vector index with linear-scan cosine search.
// Safe for concurrent use; reads proceed concurrently with other reads.
type Index struct {
	mu        sync.RWMutex
	vectors   [][]float32
	norms     []float64
	dimension int
}

// NewIndex creates an empty index. The dimension is pinned by the first
// inserted vector.
func NewIndex() *Index {
	return &Index{}
}

// Insert appends a vector tagged with its entry id. Ids are dense: the id
// must equal the current index size.
func (x *Index) Insert(_ context.Context, id int64, embedding []float64) error {
	if len(embedding) == 0 {
		return fmt.Errorf("embedding cannot be empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.dimension == 0 {
		x.dimension = len(embedding)
	} else if len(embedding) != x.dimension {
		return fmt.Errorf("%w: index holds %d-dimensional vectors, got %d",
			domain.ErrDimensionMismatch, x.dimension, len(embedding))
	}

	if id != int64(len(x.vectors)) {
		return fmt.Errorf("non-dense insert: expected id %d, got %d", len(x.vectors), id)
	}

	vec := make([]float32, len(embedding))
	var norm float64
	for i, v := range embedding {
		vec[i] = float32(v)
		norm += v * v
	}

	x.vectors = append(x.vectors, vec)
	x.norms = append(x.norms, math.Sqrt(norm))

	return nil
}

// Search scans every stored vector and returns up to limit matches ordered by
// descending cosine similarity.
func (x *Index) Search(_ context.Context, embedding []float64, limit int) ([]domain.Match, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.dimension != 0 && len(embedding) != x.dimension {
		return nil, fmt.Errorf("%w: index holds %d-dimensional vectors, got %d",
			domain.ErrDimensionMismatch, x.dimension, len(embedding))
	}

	queryNorm := norm(embedding)

	matches := make([]domain.Match, 0, len(x.vectors))
	for id, vec := range x.vectors {
		matches = append(matches, domain.Match{
			ID:    int64(id),
			Score: cosine(embedding, vec, queryNorm, x.norms[id]),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// Size returns the number of indexed vectors.
func (x *Index) Size(_ context.Context) (int64, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return int64(len(x.vectors)), nil
}

// Clear removes all vectors. The dimension stays pinned for the process
// lifetime.
func (x *Index) Clear(_ context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.vectors = nil
	x.norms = nil
	return nil
}

func norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// cosine computes dot(a, b) / (|a| * |b|). Zero vectors score 0 rather than
// dividing by zero.
func cosine(query []float64, stored []float32, queryNorm, storedNorm float64) float64 {
	if queryNorm == 0 || storedNorm == 0 {
		return 0
	}

	var dot float64
	for i, v := range query {
		dot += v * float64(stored[i])
	}

	return dot / (queryNorm * storedNorm)
}
