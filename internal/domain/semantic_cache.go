package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/davidbz/ember/internal/observability"
)

// CacheController orchestrates the semantic cache: encode, search, threshold
// decision, backend fallback, insert on miss. It is the sole interpreter of
// the similarity threshold; index adapters return raw scores.
type CacheController struct {
	encoder  EmbeddingGenerator
	index    VectorIndex
	store    CacheStore
	registry ProviderRegistry
	events   EventPublisher

	threshold  float64
	maxEntries int64

	// mu covers the insert-then-put sequence and the id counter, so a reader
	// never observes a vector without its text or vice versa.
	mu        sync.Mutex
	nextID    int64
	dimension int

	counters cacheCounters
}

// NewCacheController creates a new cache controller. The similarity threshold
// is cosine similarity in (-1, 1]; ties at exactly the threshold count as a
// hit. maxEntries of 0 means unbounded growth.
func NewCacheController(
	encoder EmbeddingGenerator,
	index VectorIndex,
	store CacheStore,
	registry ProviderRegistry,
	events EventPublisher,
	threshold float64,
	maxEntries int64,
) *CacheController {
	return &CacheController{
		encoder:    encoder,
		index:      index,
		store:      store,
		registry:   registry,
		events:     events,
		threshold:  threshold,
		maxEntries: maxEntries,
	}
}

// Restore aligns the id counter with a pre-populated index and store (e.g.
// after a warm-up from durable storage) and verifies they agree in size.
func (c *CacheController) Restore(ctx context.Context) error {
	indexSize, err := c.index.Size(ctx)
	if err != nil {
		return fmt.Errorf("failed to size vector index: %w", err)
	}

	storeSize, err := c.store.Size(ctx)
	if err != nil {
		return fmt.Errorf("failed to size cache store: %w", err)
	}

	if indexSize != storeSize {
		return fmt.Errorf("%w: index has %d vectors, store has %d entries",
			ErrStoreDesync, indexSize, storeSize)
	}

	c.mu.Lock()
	c.nextID = storeSize
	c.mu.Unlock()

	return nil
}

// Answer resolves a query from the cache when a stored query is similar
// enough, and otherwise asks the completion backend and remembers the result.
// The query is the text that gets embedded and matched; req carries the full
// backend request (it may include conversation history around the query).
func (c *CacheController) Answer(ctx context.Context, query string, req *CompletionRequest) (*Answer, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidQuery
	}

	logger := observability.FromContext(ctx)

	embedding, err := c.encoder.Generate(ctx, query)
	if err != nil {
		logger.Error("failed to generate embedding", observability.Error(err))
		return nil, fmt.Errorf("%w: failed to generate embedding: %v", ErrUpstream, err)
	}

	if err := c.checkDimension(embedding); err != nil {
		return nil, err
	}

	match, found, err := c.lookup(ctx, embedding)
	if err != nil {
		return nil, err
	}

	if found {
		return c.answerFromCache(ctx, query, match)
	}

	return c.answerFromBackend(ctx, query, embedding, req)
}

// lookup searches for the single nearest neighbor and applies the threshold.
// An empty index is a guaranteed miss and skips the search entirely.
func (c *CacheController) lookup(ctx context.Context, embedding []float64) (Match, bool, error) {
	logger := observability.FromContext(ctx)

	size, err := c.index.Size(ctx)
	if err != nil {
		return Match{}, false, fmt.Errorf("failed to size vector index: %w", err)
	}

	if size == 0 {
		logger.Debug("vector index is empty, skipping search")
		return Match{}, false, nil
	}

	results, err := c.index.Search(ctx, embedding, 1)
	if err != nil {
		logger.Error("similarity search failed",
			observability.Error(err),
			observability.Float64("threshold", c.threshold))
		return Match{}, false, fmt.Errorf("failed to search similar vectors: %w", err)
	}

	if len(results) == 0 || results[0].Score < c.threshold {
		return Match{}, false, nil
	}

	return results[0], true, nil
}

// answerFromCache serves a hit. A missing store entry here means the index
// and the store diverged; that is fatal, not a miss.
func (c *CacheController) answerFromCache(ctx context.Context, query string, match Match) (*Answer, error) {
	logger := observability.FromContext(ctx)

	entry, err := c.store.Get(ctx, match.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Error("indexed entry missing from cache store",
				observability.Int64("entry_id", match.ID))
			return nil, fmt.Errorf("%w: indexed entry %d has no stored text", ErrStoreDesync, match.ID)
		}
		return nil, fmt.Errorf("failed to fetch cached entry: %w", err)
	}

	if touchErr := c.store.Touch(ctx, match.ID); touchErr != nil {
		logger.Warn("failed to bump entry hit count",
			observability.Error(touchErr),
			observability.Int64("entry_id", match.ID))
	}

	c.counters.hits.Add(1)
	c.publish(ctx, "cache_hit", map[string]interface{}{
		"entry_id":   match.ID,
		"similarity": match.Score,
		"query":      query,
	})

	logger.Info("cache hit",
		observability.Int64("entry_id", match.ID),
		observability.Float64("similarity", match.Score))

	return &Answer{
		Text:       entry.Answer,
		Hit:        true,
		Similarity: match.Score,
		EntryID:    entry.ID,
	}, nil
}

// answerFromBackend serves a miss: call the completion backend, then remember
// the exchange. Backend failures are propagated and never cached.
func (c *CacheController) answerFromBackend(
	ctx context.Context,
	query string,
	embedding []float64,
	req *CompletionRequest,
) (*Answer, error) {
	logger := observability.FromContext(ctx)

	provider, err := c.registry.GetByModel(ctx, req.Model)
	if err != nil {
		return nil, fmt.Errorf("%w: provider routing failed: %v", ErrUpstream, err)
	}

	response, err := provider.Complete(ctx, req)
	if err != nil {
		logger.Error("completion failed", observability.Error(err))
		return nil, fmt.Errorf("%w: completion failed: %v", ErrUpstream, err)
	}

	c.counters.misses.Add(1)

	id, err := c.remember(ctx, query, response.Content, embedding)
	if err != nil {
		return nil, err
	}

	c.publish(ctx, "cache_miss", map[string]interface{}{
		"entry_id": id,
		"provider": response.Provider,
		"query":    query,
	})

	return &Answer{
		Text:    response.Content,
		Hit:     false,
		EntryID: id,
	}, nil
}

// remember inserts a new entry under the controller lock. When the configured
// bound is reached the answer is still returned but nothing is inserted; the
// dense-id invariant rules out selective eviction. Storage failures propagate
// to the caller.
func (c *CacheController) remember(ctx context.Context, query, answer string, embedding []float64) (int64, error) {
	logger := observability.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && c.nextID >= c.maxEntries {
		logger.Warn("cache is full, skipping insert",
			observability.Int64("max_entries", c.maxEntries))
		return -1, nil
	}

	id := c.nextID

	entry := &CacheEntry{
		ID:        id,
		Query:     query,
		Answer:    answer,
		Embedding: embedding,
		CreatedAt: time.Now(),
	}

	if putErr := c.store.Put(ctx, entry); putErr != nil {
		// Nothing was indexed yet, so the collections still agree.
		logger.Error("failed to store cache entry", observability.Error(putErr))
		return -1, fmt.Errorf("failed to store cache entry: %w", putErr)
	}

	if insertErr := c.index.Insert(ctx, id, embedding); insertErr != nil {
		logger.Error("failed to index embedding after storing entry",
			observability.Error(insertErr),
			observability.Int64("entry_id", id))
		return -1, fmt.Errorf("%w: entry %d stored but not indexed", ErrStoreDesync, id)
	}

	c.nextID++

	logger.Info("cached new entry",
		observability.Int64("entry_id", id),
		observability.Int("embedding_dimension", len(embedding)))

	return id, nil
}

// checkDimension pins the embedding dimension on first use and rejects any
// later change, e.g. from an encoder model swap mid-run.
func (c *CacheController) checkDimension(embedding []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dimension == 0 {
		c.dimension = len(embedding)
		return nil
	}

	if len(embedding) != c.dimension {
		return fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, c.dimension, len(embedding))
	}

	return nil
}

// Clear resets the cache to empty. This is the only destructive operation;
// individual entries are never evicted.
func (c *CacheController) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.index.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear vector index: %w", err)
	}

	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: index cleared but store clear failed: %v", ErrStoreDesync, err)
	}

	c.nextID = 0

	observability.FromContext(ctx).Info("cache cleared")
	return nil
}

func (c *CacheController) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.events == nil {
		return
	}
	c.events.Publish(ctx, eventType, data)
}
