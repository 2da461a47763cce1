// Package sqlite persists cache entries, embeddings included, so the
// in-memory vector index can be rebuilt from here after a restart.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/davidbz/ember/internal/domain"
)

const createQueriesTable = `
CREATE TABLE IF NOT EXISTS queries (
	id INTEGER PRIMARY KEY,
	query TEXT NOT NULL,
	answer TEXT NOT NULL,
	embedding BLOB NOT NULL,
	usage_count INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store implements domain.CacheStore on SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the cache database at the given path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec(createQueriesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}

	return &Store{db: db}, nil
}

// Put stores an entry with its embedding.
func (s *Store) Put(ctx context.Context, entry *domain.CacheEntry) error {
	if entry == nil {
		return fmt.Errorf("entry cannot be nil")
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (id, query, answer, embedding, usage_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Query, entry.Answer, embeddingToBytes(entry.Embedding),
		entry.HitCount, createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("store entry: %w", err)
	}

	return nil
}

// Get retrieves an entry by id.
func (s *Store) Get(ctx context.Context, id int64) (*domain.CacheEntry, error) {
	var (
		entry domain.CacheEntry
		blob  []byte
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, query, answer, embedding, usage_count, created_at FROM queries WHERE id = ?`,
		id,
	).Scan(&entry.ID, &entry.Query, &entry.Answer, &blob, &entry.HitCount, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: entry %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch entry: %w", err)
	}

	entry.Embedding = bytesToEmbedding(blob)
	return &entry, nil
}

// Touch increments the entry's usage counter.
func (s *Store) Touch(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE queries SET usage_count = usage_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("bump usage count: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bump usage count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: entry %d", domain.ErrNotFound, id)
	}

	return nil
}

// Size returns the number of stored entries.
func (s *Store) Size(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM queries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// Clear removes all entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM queries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

// LoadAll returns every entry in id order, for rebuilding the vector index at
// startup.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.CacheEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, answer, embedding, usage_count, created_at FROM queries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.CacheEntry
	for rows.Next() {
		var (
			entry domain.CacheEntry
			blob  []byte
		)
		if scanErr := rows.Scan(&entry.ID, &entry.Query, &entry.Answer, &blob,
			&entry.HitCount, &entry.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("scan entry: %w", scanErr)
		}
		entry.Embedding = bytesToEmbedding(blob)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	return entries, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

const bytesPerFloat32 = 4

// embeddingToBytes packs the vector as little-endian float32, the same layout
// the Redis backend uses.
func embeddingToBytes(embedding []float64) []byte {
	buf := make([]byte, len(embedding)*bytesPerFloat32)
	for i, f := range embedding {
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], math.Float32bits(float32(f)))
	}
	return buf
}

func bytesToEmbedding(blob []byte) []float64 {
	embedding := make([]float64, len(blob)/bytesPerFloat32)
	for i := range embedding {
		bits := binary.LittleEndian.Uint32(blob[i*bytesPerFloat32:])
		embedding[i] = float64(math.Float32frombits(bits))
	}
	return embedding
}
