package store

import (
	"time"

	"shopapi/internal/domain"
)

// CartByUser returns the user's cart, or a fresh empty cart if none has been
// written yet. The empty cart is not persisted until its first mutation.
func (s *Store) CartByUser(userID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.carts[userID]; ok {
		return cloneCart(c)
	}
	return domain.Cart{
		ID:        "cart-" + userID,
		UserID:    userID,
		Items:     []domain.CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *Store) SaveCart(c domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[c.UserID] = cloneCart(c)
}
