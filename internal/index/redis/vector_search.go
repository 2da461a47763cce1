// Package redis backs the vector index and cache store with Redis Stack,
// using FT.SEARCH KNN over a FLAT cosine index. Every cache entry lives in
// one hash under entryKeyPrefix, so the vector and its text travel together.
package redis

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/observability"
)

const (
	redisDialectVersion = 2

	entryKeyPrefix = "entry:"
)

// VectorSearch implements domain.VectorIndex on Redis.
type VectorSearch struct {
	client             *redis.Client
	indexName          string
	embeddingDimension int
}

// NewVectorSearch creates a Redis vector index adapter and ensures the search
// index exists.
func NewVectorSearch(client *redis.Client, indexName string, embeddingDimension int) (*VectorSearch, error) {
	v := &VectorSearch{
		client:             client,
		indexName:          indexName,
		embeddingDimension: embeddingDimension,
	}

	if err := v.createIndex(); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return v, nil
}

// floatsToBytes converts float64 slice to binary byte representation.
func floatsToBytes(fs []float64) []byte {
	const bytesPerFloat32 = 4
	buf := make([]byte, len(fs)*bytesPerFloat32)

	for i, f := range fs {
		// Convert float64 to float32 for Redis compatibility
		f32 := float32(f)
		u := math.Float32bits(f32)
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], u)
	}

	return buf
}

func entryKey(id int64) string {
	return fmt.Sprintf("%s%d", entryKeyPrefix, id)
}

// Insert stores the embedding on the entry's hash. The search index picks it
// up via the key prefix.
func (v *VectorSearch) Insert(ctx context.Context, id int64, embedding []float64) error {
	if len(embedding) != v.embeddingDimension {
		return fmt.Errorf("%w: index is configured for dimension %d, got %d",
			domain.ErrDimensionMismatch, v.embeddingDimension, len(embedding))
	}

	logger := observability.FromContext(ctx)
	logger.Debug("indexing embedding",
		observability.Int64("entry_id", id),
		observability.Int("embedding_dim", len(embedding)))

	err := v.client.HSet(ctx, entryKey(id),
		"entry_id", id,
		"embedding", floatsToBytes(embedding),
	).Err()
	if err != nil {
		logger.Error("vector index failed", observability.Error(err))
		return fmt.Errorf("failed to index: %w", err)
	}

	return nil
}

// Search runs a KNN query and returns matches best first. Scores are cosine
// similarities; no thresholding happens here.
func (v *VectorSearch) Search(ctx context.Context, embedding []float64, limit int) ([]domain.Match, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("starting vector search",
		observability.String("index", v.indexName),
		observability.Int("embedding_dim", len(embedding)),
		observability.Int("limit", limit))

	query := fmt.Sprintf("*=>[KNN %d @embedding $vec AS score]", limit)

	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: "entry_id"},
				{FieldName: "score"},
			},
			SortBy: []redis.FTSearchSortBy{
				{FieldName: "score", Asc: true},
			},
			DialectVersion: redisDialectVersion,
			Params: map[string]any{
				"vec": floatsToBytes(embedding),
			},
		},
	).Result()
	if err != nil {
		logger.Error("vector search failed", observability.Error(err))
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]domain.Match, 0, len(results.Docs))
	for _, doc := range results.Docs {
		if match, ok := parseSearchResult(doc); ok {
			matches = append(matches, match)
		}
	}

	return matches, nil
}

// Size returns the number of indexed entries via a match-all query.
func (v *VectorSearch) Size(ctx context.Context) (int64, error) {
	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, "*",
		&redis.FTSearchOptions{
			NoContent:   true,
			LimitOffset: 0,
			Limit:       0,
		},
	).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count indexed entries: %w", err)
	}

	return int64(results.Total), nil
}

// Clear deletes every entry hash. The search index definition survives.
func (v *VectorSearch) Clear(ctx context.Context) error {
	return clearEntries(ctx, v.client)
}

// createIndex creates the Redis search index if it doesn't exist.
func (v *VectorSearch) createIndex() error {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	// Check if index already exists
	_, err := v.client.FTInfo(ctx, v.indexName).Result()
	if err == nil {
		logger.Info("redis search index already exists, skipping creation",
			observability.String("index_name", v.indexName))
		return nil
	}

	logger.Info("creating redis search index",
		observability.String("index_name", v.indexName),
		observability.Int("embedding_dimension", v.embeddingDimension))

	_, err = v.client.FTCreate(ctx, v.indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{entryKeyPrefix},
		},
		&redis.FieldSchema{
			FieldName: "embedding",
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            v.embeddingDimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: "entry_id",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	logger.Info("successfully created redis search index",
		observability.String("index_name", v.indexName))

	return nil
}

// parseSearchResult converts one FT.SEARCH document into a match. The score
// field is cosine distance; similarity is 1 - distance.
func parseSearchResult(doc redis.Document) (domain.Match, bool) {
	scoreStr, ok := doc.Fields["score"]
	if !ok {
		return domain.Match{}, false
	}

	distance, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		return domain.Match{}, false
	}

	idStr, ok := doc.Fields["entry_id"]
	if !ok {
		return domain.Match{}, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return domain.Match{}, false
	}

	return domain.Match{
		ID:    id,
		Score: 1.0 - distance,
	}, true
}

// clearEntries deletes all entry hashes by prefix scan.
func clearEntries(ctx context.Context, client *redis.Client) error {
	iter := client.Scan(ctx, 0, entryKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}
