// Package openai generates embeddings through the OpenAI embeddings API.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Native vector widths per model family.
const (
	dimensionAdaV2   = 1536
	dimensionSmallV3 = 1536
	dimensionLargeV3 = 3072
)

// Generator generates embeddings using OpenAI.
type Generator struct {
	client    openai.Client
	model     string
	dimension int
}

// NewGenerator creates a new OpenAI embedding generator. The dimension is
// fixed at construction so the vector index can be sized before the first
// embedding is requested.
func NewGenerator(config Config) (*Generator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if config.Model == "" {
		config.Model = string(openai.EmbeddingModelTextEmbedding3Small)
	}

	dimension := config.Dimension
	if dimension <= 0 {
		dimension = modelDimension(config.Model)
	}

	return &Generator{
		client:    openai.NewClient(option.WithAPIKey(config.APIKey)),
		model:     config.Model,
		dimension: dimension,
	}, nil
}

// Generate creates a vector embedding from text.
func (g *Generator) Generate(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: openai.EmbeddingModel(g.model),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embeddings call failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no embedding returned")
	}

	return resp.Data[0].Embedding, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return "openai"
}

// Dimension returns the vector width the generator produces.
func (g *Generator) Dimension() int {
	return g.dimension
}

func modelDimension(model string) int {
	switch model {
	case string(openai.EmbeddingModelTextEmbedding3Large):
		return dimensionLargeV3
	case string(openai.EmbeddingModelTextEmbeddingAda002):
		return dimensionAdaV2
	default:
		return dimensionSmallV3
	}
}
