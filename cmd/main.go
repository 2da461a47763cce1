package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/davidbz/ember/internal/config"
	"github.com/davidbz/ember/internal/domain"
	historysqlite "github.com/davidbz/ember/internal/history/sqlite"
	"github.com/davidbz/ember/internal/httpserver"
	"github.com/davidbz/ember/internal/httpserver/middleware"
	indexmemory "github.com/davidbz/ember/internal/index/memory"
	indexredis "github.com/davidbz/ember/internal/index/redis"
	"github.com/davidbz/ember/internal/observability"
	"github.com/davidbz/ember/internal/provider/echo"
	"github.com/davidbz/ember/internal/provider/ollama"
	"github.com/davidbz/ember/internal/provider/openai"
	"github.com/davidbz/ember/internal/provider/registry"
	storememory "github.com/davidbz/ember/internal/store/memory"
	storesqlite "github.com/davidbz/ember/internal/store/sqlite"

	embeddingollama "github.com/davidbz/ember/internal/embedding/ollama"
	embeddingopenai "github.com/davidbz/ember/internal/embedding/openai"
)

// ErrProviderNotConfigured indicates that a provider is not configured and should be skipped.
var ErrProviderNotConfigured = errors.New("provider not configured")

const shutdownTimeout = 10 * time.Second

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server) {
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil {
				log.Fatalf("Server failed to start: %v", err)
			}
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				log.Fatalf("Server failed to shut down: %v", err)
			}
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// cacheBackend bundles the two halves of the cache that must stay in lockstep.
type cacheBackend struct {
	dig.Out

	Index domain.VectorIndex
	Store domain.CacheStore
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Embedding encoder
	if err := container.Provide(newEncoder); err != nil {
		log.Fatalf("Failed to provide embedding encoder: %v", err)
	}

	// Cache backend (vector index + entry store)
	if err := container.Provide(newCacheBackend); err != nil {
		log.Fatalf("Failed to provide cache backend: %v", err)
	}

	// Provider Registry
	if err := container.Provide(func() domain.ProviderRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Ollama Provider
	if err := container.Provide(func(cfg *ollama.Config) (*ollama.Provider, error) {
		return ollama.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide Ollama provider: %v", err)
	}

	// OpenAI Provider
	if err := container.Provide(func(cfg *openai.Config) (*openai.Provider, error) {
		if cfg.APIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return openai.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI provider: %v", err)
	}

	// Register providers with registry (invoked for side effects)
	if err := container.Invoke(func(
		reg domain.ProviderRegistry,
		ollamaProvider *ollama.Provider,
	) error {
		ctx := context.Background()

		if err := reg.Register(ctx, ollamaProvider); err != nil {
			return fmt.Errorf("failed to register Ollama provider: %w", err)
		}

		if err := reg.Register(ctx, echo.NewProvider()); err != nil {
			return fmt.Errorf("failed to register echo provider: %w", err)
		}

		return nil
	}); err != nil {
		log.Fatalf("Failed to register providers: %v", err)
	}

	if err := container.Invoke(func(
		reg domain.ProviderRegistry,
		openaiProvider *openai.Provider,
	) error {
		return reg.Register(context.Background(), openaiProvider)
	}); err != nil {
		// Ignore ErrProviderNotConfigured as it's expected for optional providers
		if !errors.Is(err, ErrProviderNotConfigured) {
			log.Fatalf("Failed to register OpenAI provider: %v", err)
		}
	}

	// Domain Services
	if err := container.Provide(func(
		encoder domain.EmbeddingGenerator,
		index domain.VectorIndex,
		store domain.CacheStore,
		reg domain.ProviderRegistry,
		events domain.EventPublisher,
		cacheCfg *config.CacheConfig,
	) (*domain.CacheController, error) {
		controller := domain.NewCacheController(
			encoder, index, store, reg, events,
			cacheCfg.SimilarityThreshold, cacheCfg.MaxEntries)

		if err := controller.Restore(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to restore cache: %w", err)
		}

		return controller, nil
	}); err != nil {
		log.Fatalf("Failed to provide cache controller: %v", err)
	}

	if err := container.Provide(func(cfg *config.HistoryConfig) (domain.HistoryStore, error) {
		return historysqlite.New(cfg.DBPath)
	}); err != nil {
		log.Fatalf("Failed to provide history store: %v", err)
	}

	if err := container.Provide(func(
		cache *domain.CacheController,
		history domain.HistoryStore,
		chatCfg *config.ChatConfig,
	) *domain.ChatService {
		return domain.NewChatService(cache, history, chatCfg.DefaultModel)
	}); err != nil {
		log.Fatalf("Failed to provide chat service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func newEncoder(
	cacheCfg *config.CacheConfig,
	openaiCfg *embeddingopenai.Config,
	ollamaCfg *embeddingollama.Config,
) (domain.EmbeddingGenerator, error) {
	switch cacheCfg.EmbeddingProvider {
	case "openai":
		return embeddingopenai.NewGenerator(*openaiCfg)
	case "ollama":
		return embeddingollama.NewGenerator(*ollamaCfg)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cacheCfg.EmbeddingProvider)
	}
}

// newCacheBackend builds the index/store pair for the configured backend.
//
// The memory backend persists entries to SQLite when a db path is set and
// rebuilds the index from it at startup, so restarts keep the cache warm.
// The redis backend keeps vectors and entries on the same hashes, so no
// warm-up is needed.
func newCacheBackend(
	cacheCfg *config.CacheConfig,
	redisCfg *config.RedisConfig,
	encoder domain.EmbeddingGenerator,
) (cacheBackend, error) {
	switch cacheCfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		search, err := indexredis.NewVectorSearch(client, redisCfg.IndexName, encoder.Dimension())
		if err != nil {
			return cacheBackend{}, fmt.Errorf("failed to create redis vector index: %w", err)
		}

		return cacheBackend{Index: search, Store: indexredis.NewStore(client)}, nil

	case "memory":
		index := indexmemory.NewIndex()

		if cacheCfg.DBPath == "" {
			return cacheBackend{Index: index, Store: storememory.NewStore()}, nil
		}

		store, err := storesqlite.New(cacheCfg.DBPath)
		if err != nil {
			return cacheBackend{}, fmt.Errorf("failed to open cache db: %w", err)
		}

		ctx := context.Background()
		entries, err := store.LoadAll(ctx)
		if err != nil {
			return cacheBackend{}, fmt.Errorf("failed to load cached entries: %w", err)
		}
		for _, entry := range entries {
			if err := index.Insert(ctx, entry.ID, entry.Embedding); err != nil {
				return cacheBackend{}, fmt.Errorf("failed to index entry %d: %w", entry.ID, err)
			}
		}

		return cacheBackend{Index: index, Store: store}, nil

	default:
		return cacheBackend{}, fmt.Errorf("unknown cache backend %q", cacheCfg.Backend)
	}
}
