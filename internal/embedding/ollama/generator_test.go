package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/embedding/ollama"
)

func TestNewGenerator(t *testing.T) {
	t.Run("should create generator", func(t *testing.T) {
		gen, err := ollama.NewGenerator(ollama.Config{
			BaseURL:            "http://localhost:11434",
			EmbeddingModel:     "nomic-embed-text",
			EmbeddingDimension: 768,
			Timeout:            60,
		})

		require.NoError(t, err)
		require.Equal(t, "ollama", gen.Name())
		require.Equal(t, 768, gen.Dimension())
	})

	t.Run("should require base URL", func(t *testing.T) {
		gen, err := ollama.NewGenerator(ollama.Config{EmbeddingModel: "nomic-embed-text"})

		require.Error(t, err)
		require.Nil(t, gen)
	})

	t.Run("should require embedding model", func(t *testing.T) {
		gen, err := ollama.NewGenerator(ollama.Config{BaseURL: "http://localhost:11434"})

		require.Error(t, err)
		require.Nil(t, gen)
	})
}

func TestGenerator_Generate(t *testing.T) {
	t.Run("should return embedding", func(t *testing.T) {
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/embeddings", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"embedding": []float64{0.1, 0.2, 0.3},
			})
		}))
		defer server.Close()

		gen, err := ollama.NewGenerator(ollama.Config{
			BaseURL:        server.URL,
			EmbeddingModel: "nomic-embed-text",
			Timeout:        5,
		})
		require.NoError(t, err)

		embedding, err := gen.Generate(context.Background(), "hello world")
		require.NoError(t, err)
		require.Equal(t, []float64{0.1, 0.2, 0.3}, embedding)
		require.Equal(t, "nomic-embed-text", gotBody["model"])
		require.Equal(t, "hello world", gotBody["prompt"])
	})

	t.Run("should reject empty text", func(t *testing.T) {
		gen, err := ollama.NewGenerator(ollama.Config{
			BaseURL:        "http://localhost:11434",
			EmbeddingModel: "nomic-embed-text",
		})
		require.NoError(t, err)

		embedding, err := gen.Generate(context.Background(), "")
		require.Error(t, err)
		require.Nil(t, embedding)
	})

	t.Run("should return error on non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer server.Close()

		gen, err := ollama.NewGenerator(ollama.Config{
			BaseURL:        server.URL,
			EmbeddingModel: "nomic-embed-text",
			Timeout:        5,
		})
		require.NoError(t, err)

		embedding, err := gen.Generate(context.Background(), "hello")
		require.Error(t, err)
		require.Nil(t, embedding)
	})

	t.Run("should return error on empty embedding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"embedding": []float64{}})
		}))
		defer server.Close()

		gen, err := ollama.NewGenerator(ollama.Config{
			BaseURL:        server.URL,
			EmbeddingModel: "nomic-embed-text",
			Timeout:        5,
		})
		require.NoError(t, err)

		embedding, err := gen.Generate(context.Background(), "hello")
		require.Error(t, err)
		require.Nil(t, embedding)
	})
}
