package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/ember/internal/domain"
	"github.com/davidbz/ember/internal/httpserver"
	indexmemory "github.com/davidbz/ember/internal/index/memory"
	"github.com/davidbz/ember/internal/mocks"
	"github.com/davidbz/ember/internal/provider/echo"
	"github.com/davidbz/ember/internal/provider/registry"
	storememory "github.com/davidbz/ember/internal/store/memory"
)

// newTestHandler wires the handler against real in-memory cache adapters and
// the echo provider, with the encoder and history log mocked.
func newTestHandler(t *testing.T) (*http.ServeMux, *mocks.MockEmbeddingGenerator, *mocks.MockHistoryStore) {
	t.Helper()

	mockEncoder := mocks.NewMockEmbeddingGenerator(t)
	mockHistory := mocks.NewMockHistoryStore(t)

	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(context.Background(), echo.NewProvider()))

	cache := domain.NewCacheController(
		mockEncoder, indexmemory.NewIndex(), storememory.NewStore(), reg, nil, 0.6, 0)
	chat := domain.NewChatService(cache, mockHistory, "echo4")

	mux := http.NewServeMux()
	httpserver.NewHandler(chat, cache, mockHistory).Routes(mux)

	return mux, mockEncoder, mockHistory
}

func TestHandler_HandleChat(t *testing.T) {
	t.Run("should answer a chat turn", func(t *testing.T) {
		mux, mockEncoder, mockHistory := newTestHandler(t)

		mockEncoder.EXPECT().
			Generate(mock.Anything, "Hello").
			Return([]float64{0.1, 0.2}, nil)

		mockHistory.EXPECT().
			CreateChat(mock.Anything, "New Chat").
			Return(&domain.Chat{ID: "chat-1"}, nil)
		mockHistory.EXPECT().Messages(mock.Anything, "chat-1").Return(nil, nil)
		mockHistory.EXPECT().SaveMessage(mock.Anything, "chat-1", "user", "Hello", false).Return(nil)
		mockHistory.EXPECT().
			SaveMessage(mock.Anything, "chat-1", "assistant", mock.Anything, false).
			Return(nil)
		mockHistory.EXPECT().RenameChat(mock.Anything, "chat-1", "Hello").Return(nil)

		body := `{"query": "Hello"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.ChatResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		require.Equal(t, "chat-1", result.ChatID)
		require.False(t, result.Hit)
		require.Contains(t, result.Answer, "Hello")
	})

	t.Run("should return 400 for empty query", func(t *testing.T) {
		mux, _, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"query": "  "}`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for invalid body", func(t *testing.T) {
		mux, _, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`not json`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for out-of-range temperature", func(t *testing.T) {
		mux, _, _ := newTestHandler(t)

		body := `{"query": "Hello", "temperature": 3.0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 500 when the history log fails", func(t *testing.T) {
		mux, _, mockHistory := newTestHandler(t)

		mockHistory.EXPECT().
			CreateChat(mock.Anything, "New Chat").
			Return(nil, errors.New("db is locked"))

		body := `{"query": "Hello"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("should return 502 when no provider serves the model", func(t *testing.T) {
		mux, mockEncoder, mockHistory := newTestHandler(t)

		mockEncoder.EXPECT().
			Generate(mock.Anything, "Hello").
			Return([]float64{0.1, 0.2}, nil)

		mockHistory.EXPECT().
			CreateChat(mock.Anything, "New Chat").
			Return(&domain.Chat{ID: "chat-1"}, nil)
		mockHistory.EXPECT().Messages(mock.Anything, "chat-1").Return(nil, nil)
		mockHistory.EXPECT().SaveMessage(mock.Anything, "chat-1", "user", "Hello", false).Return(nil)

		body := `{"query": "Hello", "model": "gpt-4"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestHandler_HandleListChats(t *testing.T) {
	mux, _, mockHistory := newTestHandler(t)

	mockHistory.EXPECT().
		ListChats(mock.Anything).
		Return([]*domain.Chat{{ID: "chat-1", Title: "first"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/chats", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var chats []*domain.Chat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chats))
	require.Len(t, chats, 1)
	require.Equal(t, "chat-1", chats[0].ID)
}

func TestHandler_HandleCreateChat(t *testing.T) {
	mux, _, mockHistory := newTestHandler(t)

	mockHistory.EXPECT().
		CreateChat(mock.Anything, "my chat").
		Return(&domain.Chat{ID: "chat-1", Title: "my chat"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/chats", strings.NewReader(`{"title": "my chat"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_HandleMessages(t *testing.T) {
	t.Run("should return messages", func(t *testing.T) {
		mux, _, mockHistory := newTestHandler(t)

		mockHistory.EXPECT().
			Messages(mock.Anything, "chat-1").
			Return([]*domain.ChatMessage{
				{ChatID: "chat-1", Role: "user", Content: "hello"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/chats/chat-1/messages", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var messages []*domain.ChatMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
		require.Len(t, messages, 1)
	})

	t.Run("should return 404 for unknown chat", func(t *testing.T) {
		mux, _, mockHistory := newTestHandler(t)

		mockHistory.EXPECT().
			Messages(mock.Anything, "missing").
			Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/chats/missing/messages", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_HandleRenameChat(t *testing.T) {
	t.Run("should rename chat", func(t *testing.T) {
		mux, _, mockHistory := newTestHandler(t)

		mockHistory.EXPECT().RenameChat(mock.Anything, "chat-1", "renamed").Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/chats/chat-1", strings.NewReader(`{"title": "renamed"}`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should return 400 for missing title", func(t *testing.T) {
		mux, _, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/chats/chat-1", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_HandleDeleteChat(t *testing.T) {
	t.Run("should delete chat", func(t *testing.T) {
		mux, _, mockHistory := newTestHandler(t)

		mockHistory.EXPECT().DeleteChat(mock.Anything, "chat-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/chats/chat-1", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should return 404 for unknown chat", func(t *testing.T) {
		mux, _, mockHistory := newTestHandler(t)

		mockHistory.EXPECT().DeleteChat(mock.Anything, "missing").Return(domain.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/chats/missing", nil)
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_HandleDeleteAllChats(t *testing.T) {
	mux, _, mockHistory := newTestHandler(t)

	mockHistory.EXPECT().DeleteAllChats(mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/chats", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_HandleCacheStats(t *testing.T) {
	mux, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.CacheStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Zero(t, stats.Entries)
}

func TestHandler_HandleCacheClear(t *testing.T) {
	mux, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/cache/clear", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_HandleHealth(t *testing.T) {
	mux, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body["status"])
}
