// Package memory provides a map-backed cache store for runs that don't need
// durability, and for tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/davidbz/ember/internal/domain"
)

// Store implements domain.CacheStore in process memory.
type Store struct {
	mu      sync.RWMutex
	entries map[int64]*domain.CacheEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*domain.CacheEntry),
	}
}

// Put stores an entry.
func (s *Store) Put(_ context.Context, entry *domain.CacheEntry) error {
	if entry == nil {
		return fmt.Errorf("entry cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID]; exists {
		return fmt.Errorf("entry %d already stored", entry.ID)
	}

	stored := *entry
	s.entries[entry.ID] = &stored

	return nil
}

// Get retrieves an entry by id.
func (s *Store) Get(_ context.Context, id int64) (*domain.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: entry %d", domain.ErrNotFound, id)
	}

	copied := *entry
	return &copied, nil
}

// Touch increments the entry's hit counter.
func (s *Store) Touch(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: entry %d", domain.ErrNotFound, id)
	}

	entry.HitCount++
	return nil
}

// Size returns the number of stored entries.
func (s *Store) Size(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.entries)), nil
}

// Clear removes all entries.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[int64]*domain.CacheEntry)
	return nil
}
