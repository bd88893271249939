package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one logged turn of a store's edit conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Strategy  string    `json:"strategy,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LogChat records one chat turn for a store. role is "user",
// "assistant", or "system"; strategy names what produced an assistant
// reply and is empty for user turns.
func (s *Service) LogChat(ctx context.Context, storeID, role, content, strategy string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_log (id, store_id, role, content, strategy, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), storeID, role, content, strategy, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("logging chat turn: %w", err)
	}
	return nil
}

// ChatHistory returns a store's chat turns, oldest first.
func (s *Service) ChatHistory(ctx context.Context, storeID string, limit int) ([]ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, store_id, role, content, strategy, created_at FROM chat_log
		 WHERE store_id = ? ORDER BY created_at, rowid LIMIT ?`,
		storeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}
	defer rows.Close()

	var msgs []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.StoreID, &m.Role, &m.Content, &m.Strategy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chat turn: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
