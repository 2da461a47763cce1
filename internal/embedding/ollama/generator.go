// Package ollama generates embeddings through a local Ollama server's
// /api/embeddings endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Generator generates embeddings using Ollama.
type Generator struct {
	baseURL    string
	model      string
	dimension  int
	httpClient *http.Client
}

// NewGenerator creates a new Ollama embedding generator.
func NewGenerator(config Config) (*Generator, error) {
	if config.BaseURL == "" {
		return nil, errors.New("Ollama base URL is required")
	}

	if config.EmbeddingModel == "" {
		return nil, errors.New("Ollama embedding model is required")
	}

	return &Generator{
		baseURL:   config.BaseURL,
		model:     config.EmbeddingModel,
		dimension: config.EmbeddingDimension,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}, nil
}

type embeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Generate creates a vector embedding from text.
func (g *Generator) Generate(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	reqBody, err := json.Marshal(embeddingRequest{Model: g.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/api/embeddings",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var embResp embeddingResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&embResp); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if len(embResp.Embedding) == 0 {
		return nil, errors.New("no embedding returned")
	}

	return embResp.Embedding, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return "ollama"
}

// Dimension returns the vector dimension.
func (g *Generator) Dimension() int {
	return g.dimension
}
