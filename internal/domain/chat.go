package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/davidbz/ember/internal/observability"
)

const (
	maxTemperature = 2.0
	titleMaxRunes  = 40
	newChatTitle   = "New Chat"
)

// ChatService drives one user turn: it records the exchange in the history
// log and resolves the answer through the semantic cache. The history log is
// a pure sink; it never feeds back into caching decisions.
type ChatService struct {
	cache        *CacheController
	history      HistoryStore
	defaultModel string
}

// NewChatService creates a new chat service.
func NewChatService(cache *CacheController, history HistoryStore, defaultModel string) *ChatService {
	return &ChatService{
		cache:        cache,
		history:      history,
		defaultModel: defaultModel,
	}
}

// Chat handles one user turn: ensure a session exists, record the user
// message, answer via the cache controller, record the assistant message
// with its hit flag.
func (s *ChatService) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrInvalidQuery
	}

	if req.Temperature < 0 || req.Temperature > maxTemperature {
		return nil, ErrInvalidTemperature
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	ctx = observability.WithModel(ctx, model)
	logger := observability.FromContext(ctx)

	chatID, isNew, err := s.ensureChat(ctx, req.ChatID)
	if err != nil {
		return nil, err
	}

	history, err := s.history.Messages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	if saveErr := s.history.SaveMessage(ctx, chatID, "user", query, false); saveErr != nil {
		return nil, fmt.Errorf("failed to record user message: %w", saveErr)
	}

	completionReq := &CompletionRequest{
		Model:       model,
		Messages:    buildMessages(history, query),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	answer, err := s.cache.Answer(ctx, query, completionReq)
	if err != nil {
		return nil, err
	}

	if saveErr := s.history.SaveMessage(ctx, chatID, "assistant", answer.Text, answer.Hit); saveErr != nil {
		logger.Warn("failed to record assistant message", observability.Error(saveErr))
	}

	if isNew {
		if renameErr := s.history.RenameChat(ctx, chatID, titleFromQuery(query)); renameErr != nil {
			logger.Warn("failed to set chat title", observability.Error(renameErr))
		}
	}

	return &ChatResult{
		ChatID:     chatID,
		Answer:     answer.Text,
		Hit:        answer.Hit,
		Similarity: answer.Similarity,
	}, nil
}

// ensureChat returns the existing chat id or starts a new conversation.
func (s *ChatService) ensureChat(ctx context.Context, chatID string) (string, bool, error) {
	if chatID != "" {
		return chatID, false, nil
	}

	chat, err := s.history.CreateChat(ctx, newChatTitle)
	if err != nil {
		return "", false, fmt.Errorf("failed to create chat: %w", err)
	}

	return chat.ID, true, nil
}

// buildMessages assembles the backend request from prior turns plus the new
// user query.
func buildMessages(history []*ChatMessage, query string) []Message {
	messages := make([]Message, 0, len(history)+1)
	for _, msg := range history {
		messages = append(messages, Message{Role: msg.Role, Content: msg.Content})
	}
	return append(messages, Message{Role: "user", Content: query})
}

// titleFromQuery derives a chat title from the first user message.
func titleFromQuery(query string) string {
	if utf8.RuneCountInString(query) <= titleMaxRunes {
		return query
	}

	runes := []rune(query)
	return string(runes[:titleMaxRunes]) + "..."
}
