package domain

import (
	"context"
	"fmt"
	"sync/atomic"
)

// cacheCounters tracks hit/miss totals for the process lifetime.
type cacheCounters struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Stats returns cache size and performance counters. Entry count comes from
// the store so it reflects durable state, not just this process's inserts.
func (c *CacheController) Stats(ctx context.Context) (*CacheStats, error) {
	entries, err := c.store.Size(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to size cache store: %w", err)
	}

	return &CacheStats{
		Entries: entries,
		Hits:    c.counters.hits.Load(),
		Misses:  c.counters.misses.Load(),
	}, nil
}
