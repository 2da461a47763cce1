package domain

import "context"

// EmbeddingGenerator creates vector embeddings from text.
type EmbeddingGenerator interface {
	// Generate creates a vector embedding from text.
	Generate(ctx context.Context, text string) ([]float64, error)

	// Name returns the generator identifier.
	Name() string

	// Dimension returns the vector dimension.
	Dimension() int
}

// VectorIndex stores embeddings and performs nearest-neighbor search over them.
// Entry ids are dense: Insert expects id == Size at the time of the call.
type VectorIndex interface {
	// Insert appends a vector tagged with its entry id.
	Insert(ctx context.Context, id int64, embedding []float64) error

	// Search returns up to limit nearest neighbors, best match first.
	// Scores are cosine similarities; thresholding is the caller's concern.
	Search(ctx context.Context, embedding []float64, limit int) ([]Match, error)

	// Size returns the number of indexed vectors.
	Size(ctx context.Context) (int64, error)

	// Clear removes all vectors.
	Clear(ctx context.Context) error
}

// CacheStore maps entry ids to their query and answer text.
type CacheStore interface {
	// Put stores an entry. Entries are immutable once stored.
	Put(ctx context.Context, entry *CacheEntry) error

	// Get retrieves an entry by id, ErrNotFound if absent.
	Get(ctx context.Context, id int64) (*CacheEntry, error)

	// Touch increments the entry's hit counter.
	Touch(ctx context.Context, id int64) error

	// Size returns the number of stored entries.
	Size(ctx context.Context) (int64, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Provider represents any LLM completion backend.
type Provider interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider identifier.
	Name() string

	// IsModelSupported checks if the provider supports the given model.
	IsModelSupported(ctx context.Context, model string) bool

	// SupportedModels returns all models this provider supports.
	SupportedModels(ctx context.Context) []string
}

// ProviderRegistry manages available providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (Provider, error)

	// GetByModel retrieves the provider serving the given model.
	GetByModel(ctx context.Context, model string) (Provider, error)

	// List returns all registered provider names.
	List(ctx context.Context) ([]string, error)
}

// HistoryStore records conversations for display. The cache never reads it to
// inform caching decisions.
type HistoryStore interface {
	// CreateChat starts a new conversation.
	CreateChat(ctx context.Context, title string) (*Chat, error)

	// ListChats returns all chats, newest first.
	ListChats(ctx context.Context) ([]*Chat, error)

	// Messages returns a chat's messages in timestamp order.
	Messages(ctx context.Context, chatID string) ([]*ChatMessage, error)

	// SaveMessage appends a message to a chat.
	SaveMessage(ctx context.Context, chatID, role, content string, hit bool) error

	// RenameChat updates a chat's title.
	RenameChat(ctx context.Context, chatID, title string) error

	// DeleteChat removes a chat and its messages.
	DeleteChat(ctx context.Context, chatID string) error

	// DeleteAllChats removes every chat.
	DeleteAllChats(ctx context.Context) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
