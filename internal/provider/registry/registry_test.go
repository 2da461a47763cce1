package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/provider/registry"
)

// mockProvider is a mock implementation of domain.Provider for testing.
type mockProvider struct {
	name string
}

func (m *mockProvider) Complete(_ context.Context, _ *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	return &domain.CompletionResponse{}, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) IsModelSupported(_ context.Context, model string) bool {
	for _, supported := range m.models() {
		if model == supported {
			return true
		}
	}
	return false
}

func (m *mockProvider) SupportedModels(_ context.Context) []string {
	return m.models()
}

func (m *mockProvider) models() []string {
	switch m.name {
	case "openai":
		return []string{"gpt-4", "gpt-3.5-turbo"}
	case "ollama":
		return []string{"llama3.2", "mistral"}
	default:
		return []string{}
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register provider successfully", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		provider := &mockProvider{name: "openai"}

		err := reg.Register(ctx, provider)
		require.NoError(t, err)

		// Verify provider was registered
		registered, err := reg.Get(ctx, "openai")
		require.NoError(t, err)
		require.NotNil(t, registered)
		require.Equal(t, "openai", registered.Name())
	})

	t.Run("should return error when provider is nil", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		err := reg.Register(ctx, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider cannot be nil")
	})

	t.Run("should return error when provider name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		provider := &mockProvider{name: ""}

		err := reg.Register(ctx, provider)
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider name cannot be empty")
	})

	t.Run("should return error when provider already registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &mockProvider{name: "openai"}))

		err := reg.Register(ctx, &mockProvider{name: "openai"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("should return error when provider not found", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		provider, err := reg.Get(ctx, "missing")
		require.Error(t, err)
		require.Nil(t, provider)
	})

	t.Run("should return error when name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		provider, err := reg.Get(ctx, "")
		require.Error(t, err)
		require.Nil(t, provider)
	})
}

func TestRegistry_GetByModel(t *testing.T) {
	t.Run("should route model to its provider", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &mockProvider{name: "openai"}))
		require.NoError(t, reg.Register(ctx, &mockProvider{name: "ollama"}))

		provider, err := reg.GetByModel(ctx, "llama3.2")
		require.NoError(t, err)
		require.Equal(t, "ollama", provider.Name())

		provider, err = reg.GetByModel(ctx, "gpt-4")
		require.NoError(t, err)
		require.Equal(t, "openai", provider.Name())
	})

	t.Run("should return error for unknown model", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &mockProvider{name: "ollama"}))

		provider, err := reg.GetByModel(ctx, "claude-3")
		require.Error(t, err)
		require.Nil(t, provider)
		require.Contains(t, err.Error(), "no provider found for model")
	})

	t.Run("should return error for empty model", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		provider, err := reg.GetByModel(ctx, "")
		require.Error(t, err)
		require.Nil(t, provider)
	})
}

func TestRegistry_List(t *testing.T) {
	reg := registry.NewRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, &mockProvider{name: "openai"}))
	require.NoError(t, reg.Register(ctx, &mockProvider{name: "ollama"}))

	names, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, names, 2)
	require.Contains(t, names, "openai")
	require.Contains(t, names, "ollama")
}
