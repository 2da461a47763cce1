package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	embeddingollama "github.com/davidbz/ember/internal/embedding/ollama"
	embeddingopenai "github.com/davidbz/ember/internal/embedding/openai"
	"github.com/davidbz/ember/internal/provider/ollama"
	"github.com/davidbz/ember/internal/provider/openai"
)

// Config represents the application configuration.
type Config struct {
	Server          ServerConfig
	CORS            CORSConfig
	Cache           CacheConfig
	Chat            ChatConfig
	History         HistoryConfig
	Redis           RedisConfig
	OpenAI          openai.Config
	Ollama          ollama.Config
	OpenAIEmbedding embeddingopenai.Config
	OllamaEmbedding embeddingollama.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig contains semantic cache settings.
//
// SimilarityThreshold is cosine similarity; valid range is (-1, 1] and the
// comparison is inclusive. MaxEntries of 0 keeps the reference behavior of
// unbounded growth. DBPath empty disables durable cache storage.
type CacheConfig struct {
	SimilarityThreshold float64 `env:"CACHE_SIMILARITY_THRESHOLD" envDefault:"0.6"`
	MaxEntries          int64   `env:"CACHE_MAX_ENTRIES"          envDefault:"0"`
	Backend             string  `env:"CACHE_BACKEND"              envDefault:"memory"` // memory or redis
	DBPath              string  `env:"CACHE_DB_PATH"              envDefault:"semantic_cache.db"`
	EmbeddingProvider   string  `env:"CACHE_EMBEDDING_PROVIDER"   envDefault:"ollama"` // ollama or openai
}

// ChatConfig contains chat service settings.
type ChatConfig struct {
	DefaultModel string `env:"CHAT_DEFAULT_MODEL" envDefault:"llama3.2"`
}

// HistoryConfig contains conversation log settings.
type HistoryConfig struct {
	DBPath string `env:"HISTORY_DB_PATH" envDefault:"chat_history.db"`
}

// RedisConfig contains Redis connection settings for the redis cache backend.
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	IndexName string `env:"REDIS_INDEX_NAME" envDefault:"ember_cache_idx"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*CacheConfig
	*ChatConfig
	*HistoryConfig
	*RedisConfig
	OpenAI          *openai.Config
	Ollama          *ollama.Config
	OpenAIEmbedding *embeddingopenai.Config
	OllamaEmbedding *embeddingollama.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	if err := cfg.validate(); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Cache,
		&cfg.Chat,
		&cfg.History,
		&cfg.Redis,
		&cfg.OpenAI,
		&cfg.Ollama,
		&cfg.OpenAIEmbedding,
		&cfg.OllamaEmbedding,
	}
}

func (c *Config) validate() error {
	if c.Cache.SimilarityThreshold <= -1 || c.Cache.SimilarityThreshold > 1 {
		return fmt.Errorf("CACHE_SIMILARITY_THRESHOLD must be in (-1, 1], got %v",
			c.Cache.SimilarityThreshold)
	}

	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES cannot be negative, got %d", c.Cache.MaxEntries)
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", c.Cache.Backend)
	}

	switch c.Cache.EmbeddingProvider {
	case "ollama", "openai":
	default:
		return fmt.Errorf("CACHE_EMBEDDING_PROVIDER must be ollama or openai, got %q",
			c.Cache.EmbeddingProvider)
	}

	return nil
}
