package domain

import "time"

// Cart holds a user's pending line items. There is at most one cart per user,
// created lazily on first access and emptied (not deleted) after a successful
// order placement.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is a (product, quantity) pair. A cart never contains two items with
// the same product ID; adds merge by incrementing the quantity.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
