package domain

import "errors"

var (
	// ErrInvalidQuery indicates an empty or whitespace-only query, rejected
	// before any encoder or index work.
	ErrInvalidQuery = errors.New("query cannot be empty")

	// ErrInvalidTemperature indicates a sampling temperature outside [0, 2].
	ErrInvalidTemperature = errors.New("temperature must be between 0 and 2")

	// ErrNotFound indicates an absent entry or chat.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates a failure in an external service the cache
	// depends on: the embedding encoder or a completion provider.
	ErrUpstream = errors.New("upstream service failed")

	// ErrStoreDesync indicates the vector index and the cache store have
	// diverged. This is a consistency violation, not a recoverable miss:
	// answering from the backend after it would mask data corruption.
	ErrStoreDesync = errors.New("vector index and cache store are out of sync")

	// ErrDimensionMismatch indicates the encoder produced a vector whose
	// dimension differs from the one pinned at process start.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
