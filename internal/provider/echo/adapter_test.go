package echo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/provider/echo"
)

func TestProvider_Complete(t *testing.T) {
	t.Run("should echo messages back", func(t *testing.T) {
		provider := echo.NewProvider()
		ctx := context.Background()

		req := &domain.CompletionRequest{
			Model: "echo4",
			Messages: []domain.Message{
				{Role: "user", Content: "Hello world"},
				{Role: "assistant", Content: "Hi"},
			},
		}

		resp, err := provider.Complete(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, resp)
		require.Equal(t, "echo", resp.Provider)
		require.Equal(t, "echo4", resp.Model)
		require.Equal(t, "[user]: Hello world\n[assistant]: Hi\n", resp.Content)
		require.Equal(t, resp.Usage.PromptTokens+resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
	})

	t.Run("should return error when request is nil", func(t *testing.T) {
		provider := echo.NewProvider()
		ctx := context.Background()

		resp, err := provider.Complete(ctx, nil)
		require.Error(t, err)
		require.Nil(t, resp)
	})

	t.Run("should return error for unsupported model", func(t *testing.T) {
		provider := echo.NewProvider()
		ctx := context.Background()

		resp, err := provider.Complete(ctx, &domain.CompletionRequest{Model: "gpt-4"})
		require.Error(t, err)
		require.Nil(t, resp)
	})

	t.Run("should handle empty messages", func(t *testing.T) {
		provider := echo.NewProvider()
		ctx := context.Background()

		resp, err := provider.Complete(ctx, &domain.CompletionRequest{Model: "echo4"})
		require.NoError(t, err)
		require.Empty(t, resp.Content)
		require.Zero(t, resp.Usage.TotalTokens)
	})
}

func TestProvider_ModelSupport(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	require.Equal(t, "echo", provider.Name())
	require.True(t, provider.IsModelSupported(ctx, "echo4"))
	require.False(t, provider.IsModelSupported(ctx, "gpt-4"))
	require.Equal(t, []string{"echo4"}, provider.SupportedModels(ctx))
}
