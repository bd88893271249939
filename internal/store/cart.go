package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matjar-app/matjar/internal/session"
)

// LoadCart reads a store's cart. A store with no saved cart gets a
// fresh empty one.
func (s *Service) LoadCart(ctx context.Context, storeID string) (*session.Cart, error) {
	var itemsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT items FROM carts WHERE store_id = ?`, storeID).Scan(&itemsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return session.NewCart(storeID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	cart := session.NewCart(storeID)
	if err := json.Unmarshal([]byte(itemsJSON), &cart.Items); err != nil {
		return nil, fmt.Errorf("unmarshaling cart items: %w", err)
	}
	return cart, nil
}

// SaveCart upserts a store's cart. Called after every cart mutation.
func (s *Service) SaveCart(ctx context.Context, cart *session.Cart) error {
	items := cart.Items
	if items == nil {
		items = []session.CartItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling cart items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO carts (store_id, items, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(store_id) DO UPDATE SET items = excluded.items, updated_at = excluded.updated_at`,
		cart.StoreID, string(itemsJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}
