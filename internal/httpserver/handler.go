package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	chat    *domain.ChatService
	cache   *domain.CacheController
	history domain.HistoryStore
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(chat *domain.ChatService, cache *domain.CacheController, history domain.HistoryStore) *Handler {
	return &Handler{
		chat:    chat,
		cache:   cache,
		history: history,
	}
}

// Routes registers all handlers on the mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/chat", h.HandleChat)
	mux.HandleFunc("GET /v1/chats", h.HandleListChats)
	mux.HandleFunc("POST /v1/chats", h.HandleCreateChat)
	mux.HandleFunc("DELETE /v1/chats", h.HandleDeleteAllChats)
	mux.HandleFunc("GET /v1/chats/{id}/messages", h.HandleMessages)
	mux.HandleFunc("PATCH /v1/chats/{id}", h.HandleRenameChat)
	mux.HandleFunc("DELETE /v1/chats/{id}", h.HandleDeleteChat)
	mux.HandleFunc("GET /v1/cache/stats", h.HandleCacheStats)
	mux.HandleFunc("POST /v1/cache/clear", h.HandleCacheClear)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

// HandleChat processes one user turn.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ChatID != "" {
		ctx = observability.WithChatID(ctx, req.ChatID)
	}

	logger := observability.FromContext(ctx)
	logger.Info("chat request received",
		observability.String("model", req.Model),
		observability.Int("query_length", len(req.Query)),
	)

	result, err := h.chat.Chat(ctx, &req)
	if err != nil {
		h.writeChatError(ctx, w, err)
		return
	}

	logger.Info("chat request answered",
		observability.Bool("hit", result.Hit),
		observability.Float64("similarity", result.Similarity),
	)

	writeJSON(ctx, w, http.StatusOK, result)
}

// writeChatError maps domain errors to HTTP status codes. Encoder, routing
// and completion failures are the upstream's fault (502); everything else,
// a desync or a failing local store included, is ours (500).
func (h *Handler) writeChatError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)
	logger.Error("chat request failed", observability.Error(err))

	switch {
	case errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrInvalidTemperature):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrUpstream):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleListChats returns all chats, newest first.
func (h *Handler) HandleListChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chats, err := h.history.ListChats(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to list chats", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if chats == nil {
		chats = []*domain.Chat{}
	}

	writeJSON(ctx, w, http.StatusOK, chats)
}

// HandleCreateChat starts a new conversation.
func (h *Handler) HandleCreateChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Title string `json:"title"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Title == "" {
		req.Title = "New Chat"
	}

	chat, err := h.history.CreateChat(ctx, req.Title)
	if err != nil {
		observability.FromContext(ctx).Error("failed to create chat", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, chat)
}

// HandleMessages returns a chat's messages in order.
func (h *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithChatID(r.Context(), r.PathValue("id"))

	messages, err := h.history.Messages(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		observability.FromContext(ctx).Error("failed to load messages", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if messages == nil {
		messages = []*domain.ChatMessage{}
	}

	writeJSON(ctx, w, http.StatusOK, messages)
}

// HandleRenameChat updates a chat's title.
func (h *Handler) HandleRenameChat(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithChatID(r.Context(), r.PathValue("id"))

	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	if err := h.history.RenameChat(ctx, r.PathValue("id"), req.Title); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		observability.FromContext(ctx).Error("failed to rename chat", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteChat removes one chat and its messages.
func (h *Handler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithChatID(r.Context(), r.PathValue("id"))

	if err := h.history.DeleteChat(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		observability.FromContext(ctx).Error("failed to delete chat", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteAllChats removes every chat.
func (h *Handler) HandleDeleteAllChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.history.DeleteAllChats(ctx); err != nil {
		observability.FromContext(ctx).Error("failed to delete chats", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCacheStats reports cache size and hit/miss counters.
func (h *Handler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.cache.Stats(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to read cache stats", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}

// HandleCacheClear resets the cache to empty.
func (h *Handler) HandleCacheClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.cache.Clear(ctx); err != nil {
		observability.FromContext(ctx).Error("failed to clear cache", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Status already written, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
