// Package sqlite records conversations. It is a pure sink for display: the
// cache never reads it to inform matching decisions.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/davidbz/ember/internal/domain"
)

const createHistoryTables = `
CREATE TABLE IF NOT EXISTS chats (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	chat_id TEXT NOT NULL,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	hit INTEGER NOT NULL DEFAULT 0,
	timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (chat_id) REFERENCES chats (id) ON DELETE CASCADE
);
`

// Store implements domain.HistoryStore on SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the history database at the given path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := db.Exec(createHistoryTables); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	return &Store{db: db}, nil
}

// CreateChat starts a new conversation.
func (s *Store) CreateChat(ctx context.Context, title string) (*domain.Chat, error) {
	id := uuid.New().String()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chats (id, title) VALUES (?, ?)`, id, title)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	var chat domain.Chat
	err = s.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM chats WHERE id = ?`, id,
	).Scan(&chat.ID, &chat.Title, &chat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	return &chat, nil
}

// ListChats returns all chats, newest first.
func (s *Store) ListChats(ctx context.Context) ([]*domain.Chat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM chats ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []*domain.Chat
	for rows.Next() {
		var chat domain.Chat
		if scanErr := rows.Scan(&chat.ID, &chat.Title, &chat.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("scan chat: %w", scanErr)
		}
		chats = append(chats, &chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	return chats, nil
}

// Messages returns a chat's messages in timestamp order.
func (s *Store) Messages(ctx context.Context, chatID string) ([]*domain.ChatMessage, error) {
	if err := s.chatExists(ctx, chatID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chat_id, role, content, hit, timestamp
		 FROM messages WHERE chat_id = ? ORDER BY timestamp, id`, chatID)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if scanErr := rows.Scan(&msg.ID, &msg.ChatID, &msg.Role, &msg.Content,
			&msg.Hit, &msg.Timestamp); scanErr != nil {
			return nil, fmt.Errorf("scan message: %w", scanErr)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	return messages, nil
}

// SaveMessage appends a message to a chat.
func (s *Store) SaveMessage(ctx context.Context, chatID, role, content string, hit bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (chat_id, role, content, hit) VALUES (?, ?, ?, ?)`,
		chatID, role, content, hit)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// RenameChat updates a chat's title.
func (s *Store) RenameChat(ctx context.Context, chatID, title string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE chats SET title = ? WHERE id = ?`, title, chatID)
	if err != nil {
		return fmt.Errorf("rename chat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename chat: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: chat %s", domain.ErrNotFound, chatID)
	}

	return nil
}

// DeleteChat removes a chat; its messages go with it via the cascade.
func (s *Store) DeleteChat(ctx context.Context, chatID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM chats WHERE id = ?`, chatID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: chat %s", domain.ErrNotFound, chatID)
	}

	return nil
}

// DeleteAllChats removes every chat and message.
func (s *Store) DeleteAllChats(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chats`); err != nil {
		return fmt.Errorf("delete all chats: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) chatExists(ctx context.Context, chatID string) error {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM chats WHERE id = ?`, chatID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: chat %s", domain.ErrNotFound, chatID)
	}
	if err != nil {
		return fmt.Errorf("check chat: %w", err)
	}
	return nil
}
