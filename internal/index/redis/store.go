package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/ember/internal/domain"
)

// Store implements domain.CacheStore on the same entry hashes the vector
// index writes to, so one key holds the whole cache entry.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis cache store adapter.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Put stores the entry's text fields on its hash.
func (s *Store) Put(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil {
		return fmt.Errorf("entry cannot be nil")
	}

	err := s.client.HSet(ctx, entryKey(entry.ID),
		"entry_id", entry.ID,
		"query", entry.Query,
		"answer", entry.Answer,
		"hit_count", entry.HitCount,
		"created_at", entry.CreatedAt.Unix(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store entry: %w", err)
	}

	return nil
}

// Get retrieves an entry's text fields by id.
func (s *Store) Get(ctx context.Context, id int64) (*domain.CacheEntry, error) {
	fields, err := s.client.HGetAll(ctx, entryKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entry: %w", err)
	}

	if _, ok := fields["query"]; !ok {
		return nil, fmt.Errorf("%w: entry %d", domain.ErrNotFound, id)
	}

	hits, err := strconv.ParseInt(fields["hit_count"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt hit_count on entry %d: %w", id, err)
	}

	ts, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt created_at on entry %d: %w", id, err)
	}

	return &domain.CacheEntry{
		ID:        id,
		Query:     fields["query"],
		Answer:    fields["answer"],
		HitCount:  hits,
		CreatedAt: time.Unix(ts, 0),
	}, nil
}

// Touch increments the entry's hit counter.
func (s *Store) Touch(ctx context.Context, id int64) error {
	if err := s.client.HIncrBy(ctx, entryKey(id), "hit_count", 1).Err(); err != nil {
		return fmt.Errorf("failed to bump hit count: %w", err)
	}
	return nil
}

// Size counts entry hashes by prefix scan.
func (s *Store) Size(ctx context.Context) (int64, error) {
	var count int64
	iter := s.client.Scan(ctx, 0, entryKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan failed: %w", err)
	}
	return count, nil
}

// Clear removes every entry hash.
func (s *Store) Clear(ctx context.Context) error {
	return clearEntries(ctx, s.client)
}
