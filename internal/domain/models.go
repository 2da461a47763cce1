package domain

import "time"

// CacheEntry is one remembered exchange: the original query, the answer the
// backend produced for it, and the query's embedding.
type CacheEntry struct {
	ID        int64
	Query     string
	Answer    string
	Embedding []float64
	HitCount  int64
	CreatedAt time.Time
}

// Match is a single vector search result. Score is cosine similarity in [-1, 1].
type Match struct {
	ID    int64
	Score float64
}

// CompletionRequest represents a unified LLM request.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// CompletionResponse represents a unified LLM response.
type CompletionResponse struct {
	ID         string    `json:"id"`
	Model      string    `json:"model"`
	Provider   string    `json:"provider"`
	Content    string    `json:"content"`
	Usage      Usage     `json:"usage"`
	FinishTime time.Time `json:"finish_time"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Answer is the cache controller's reply to a query.
type Answer struct {
	Text       string
	Hit        bool
	Similarity float64
	EntryID    int64
}

// CacheStats reports cache size and performance counters.
type CacheStats struct {
	Entries int64 `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Chat is one conversation session.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is one recorded message within a chat.
type ChatMessage struct {
	ID        int64     `json:"id"`
	ChatID    string    `json:"chat_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Hit       bool      `json:"hit"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is a user turn submitted to the chat service.
type ChatRequest struct {
	ChatID      string  `json:"chat_id,omitempty"`
	Query       string  `json:"query"`
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

// ChatResult is the chat service's reply to a user turn.
type ChatResult struct {
	ChatID     string  `json:"chat_id"`
	Answer     string  `json:"answer"`
	Hit        bool    `json:"hit"`
	Similarity float64 `json:"similarity,omitempty"`
}
