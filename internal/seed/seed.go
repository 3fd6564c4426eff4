// Package seed loads the demo catalog and demo accounts into a fresh store.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/domain"
	"shopapi/internal/store"
)

func strPtr(v string) *string { return &v }

// Apply inserts the demo data set: a small category tree, three products and
// two users with known passwords (alice/bob) plus their empty carts. IDs are
// fixed so manual testing is predictable.
func Apply(st *store.Store) error {
	now := time.Now().UTC()

	categories := []domain.Category{
		{ID: "1", Name: "Electronics", ParentID: nil},
		{ID: "2", Name: "Laptops", ParentID: strPtr("1")},
		{ID: "3", Name: "Smartphones", ParentID: strPtr("1")},
		{ID: "4", Name: "Clothing", ParentID: nil},
	}
	for _, c := range categories {
		st.CreateCategory(c)
	}

	products := []domain.Product{
		{
			ID:          "1",
			Name:        `MacBook Pro 16"`,
			Description: "Apple MacBook Pro with M3 chip",
			Price:       decimal.RequireFromString("2499.99"),
			Stock:       10,
			CategoryID:  "2",
			ImageURLs:   []string{"https://example.com/macbook.jpg"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "iPhone 15 Pro",
			Description: "Latest iPhone with titanium design",
			Price:       decimal.RequireFromString("999.99"),
			Stock:       25,
			CategoryID:  "3",
			ImageURLs:   []string{"https://example.com/iphone.jpg"},
			CreatedAt:   now.Add(time.Millisecond),
			UpdatedAt:   now.Add(time.Millisecond),
		},
		{
			ID:          "3",
			Name:        "T-Shirt",
			Description: "Comfortable cotton t-shirt",
			Price:       decimal.RequireFromString("29.99"),
			Stock:       100,
			CategoryID:  "4",
			ImageURLs:   []string{"https://example.com/tshirt.jpg"},
			CreatedAt:   now.Add(2 * time.Millisecond),
			UpdatedAt:   now.Add(2 * time.Millisecond),
		},
	}
	for _, p := range products {
		st.CreateProduct(p)
	}

	users := []struct {
		id       string
		email    string
		name     string
		password string
		address  domain.Address
	}{
		{
			id: "1", email: "alice@example.com", name: "Alice Johnson", password: "password123",
			address: domain.Address{Street: "123 Test St", City: "Test City", PostalCode: "12345", Country: "US"},
		},
		{
			id: "2", email: "bob@example.com", name: "Bob Smith", password: "password456",
			address: domain.Address{Street: "456 Demo Ave", City: "Demo City", PostalCode: "67890", Country: "US"},
		},
	}
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		addr := u.address
		st.CreateUser(domain.User{
			ID:           u.id,
			Email:        u.email,
			Name:         u.name,
			PasswordHash: string(hashed),
			Address:      &addr,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		st.SaveCart(domain.Cart{
			ID:        "cart-" + u.id,
			UserID:    u.id,
			Items:     []domain.CartItem{},
			UpdatedAt: now,
		})
	}

	return nil
}
