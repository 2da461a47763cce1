package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.InEpsilon(t, 0.6, cfg.Cache.SimilarityThreshold, 0.001)
		require.Zero(t, cfg.Cache.MaxEntries)
		require.Equal(t, "memory", cfg.Cache.Backend)
		require.Equal(t, "semantic_cache.db", cfg.Cache.DBPath)
		require.Equal(t, "ollama", cfg.Cache.EmbeddingProvider)
		require.Equal(t, "llama3.2", cfg.Chat.DefaultModel)
		require.Equal(t, "chat_history.db", cfg.History.DBPath)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "ember_cache_idx", cfg.Redis.IndexName)
		require.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
		require.Empty(t, cfg.OpenAI.APIKey)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("CACHE_SIMILARITY_THRESHOLD", "0.85")
		t.Setenv("CACHE_MAX_ENTRIES", "1000")
		t.Setenv("CACHE_BACKEND", "redis")
		t.Setenv("CACHE_EMBEDDING_PROVIDER", "openai")
		t.Setenv("CHAT_DEFAULT_MODEL", "gpt-4")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.InEpsilon(t, 0.85, cfg.Cache.SimilarityThreshold, 0.001)
		require.Equal(t, int64(1000), cfg.Cache.MaxEntries)
		require.Equal(t, "redis", cfg.Cache.Backend)
		require.Equal(t, "openai", cfg.Cache.EmbeddingProvider)
		require.Equal(t, "gpt-4", cfg.Chat.DefaultModel)
		require.Equal(t, "redis:6379", cfg.Redis.Addr)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
	})

	t.Run("should reject threshold outside valid range", func(t *testing.T) {
		t.Setenv("CACHE_SIMILARITY_THRESHOLD", "1.5")

		require.Panics(t, func() { config.Load() })
	})

	t.Run("should reject unknown cache backend", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "postgres")

		require.Panics(t, func() { config.Load() })
	})

	t.Run("should reject unknown embedding provider", func(t *testing.T) {
		t.Setenv("CACHE_EMBEDDING_PROVIDER", "huggingface")

		require.Panics(t, func() { config.Load() })
	})

	t.Run("should reject negative max entries", func(t *testing.T) {
		t.Setenv("CACHE_MAX_ENTRIES", "-1")

		require.Panics(t, func() { config.Load() })
	})
}
