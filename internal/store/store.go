// Package store implements the in-memory data store backing the API. A single
// RWMutex guards all entity maps so that every exported operation is atomic
// with respect to concurrent requests; all returned values are copies.
package store

import (
	"sync"

	"shopapi/internal/domain"
)

type Store struct {
	mu         sync.RWMutex
	products   map[string]domain.Product
	categories map[string]domain.Category
	users      map[string]domain.User
	carts      map[string]domain.Cart // keyed by user ID, one cart per user
	orders     map[string]domain.Order
	tokens     map[string]Token
}

func New() *Store {
	return &Store{
		products:   make(map[string]domain.Product),
		categories: make(map[string]domain.Category),
		users:      make(map[string]domain.User),
		carts:      make(map[string]domain.Cart),
		orders:     make(map[string]domain.Order),
		tokens:     make(map[string]Token),
	}
}

// Clone helpers keep callers from aliasing slices held inside the maps.

func cloneProduct(p domain.Product) domain.Product {
	if p.ImageURLs != nil {
		urls := make([]string, len(p.ImageURLs))
		copy(urls, p.ImageURLs)
		p.ImageURLs = urls
	}
	return p
}

func cloneCart(c domain.Cart) domain.Cart {
	items := make([]domain.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		o.ShippingAddress = &addr
	}
	return o
}

func cloneUser(u domain.User) domain.User {
	if u.Address != nil {
		addr := *u.Address
		u.Address = &addr
	}
	return u
}

func cloneCategory(c domain.Category) domain.Category {
	if c.ParentID != nil {
		parent := *c.ParentID
		c.ParentID = &parent
	}
	return c
}
