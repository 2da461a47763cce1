// Package ollama provides an adapter for a local Ollama server. It implements
// the domain.Provider interface over the /api/generate endpoint.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/observability"
)

// Provider implements the domain.Provider interface for Ollama.
type Provider struct {
	client *Client
	name   string
	models []string
}

// NewProvider creates a new Ollama provider.
func NewProvider(config Config) (*Provider, error) {
	if config.BaseURL == "" {
		return nil, errors.New("Ollama base URL is required")
	}

	models := config.Models
	if len(models) == 0 {
		return nil, errors.New("at least one Ollama model is required")
	}

	return &Provider{
		client: NewClient(config),
		name:   "ollama",
		models: models,
	}, nil
}

// Complete sends a completion request and returns the full response.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Ollama API")

	prompt := buildPrompt(req.Messages)

	resp, err := p.client.Generate(ctx, req.Model, prompt, req.Temperature, req.MaxTokens)
	if err != nil {
		logger.Error("Ollama API call failed", observability.Error(err))
		return nil, fmt.Errorf("Ollama API call failed: %w", err)
	}

	logger.Debug("Ollama API call succeeded",
		observability.Int("prompt_tokens", resp.PromptEvalCount),
		observability.Int("completion_tokens", resp.EvalCount),
	)

	return &domain.CompletionResponse{
		ID:       fmt.Sprintf("ollama-%d", time.Now().UnixNano()),
		Model:    resp.Model,
		Provider: p.name,
		Content:  resp.Response,
		Usage: domain.Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
		FinishTime: time.Now(),
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// IsModelSupported checks if the provider supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	for _, m := range p.models {
		if m == model {
			return true
		}
	}
	return false
}

// SupportedModels returns all models this provider serves.
func (p *Provider) SupportedModels(_ context.Context) []string {
	models := make([]string, len(p.models))
	copy(models, p.models)
	return models
}

// buildPrompt flattens the conversation into the plain-prompt format the
// generate endpoint expects, ending with an open assistant turn.
func buildPrompt(messages []domain.Message) string {
	var builder strings.Builder
	for _, msg := range messages {
		builder.WriteString(msg.Role)
		builder.WriteString(": ")
		builder.WriteString(msg.Content)
		builder.WriteString("\n")
	}
	builder.WriteString("assistant:")
	return builder.String()
}
