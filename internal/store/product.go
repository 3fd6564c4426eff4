package store

import (
	"sort"
	"time"

	"shopapi/internal/domain"
)

// Products returns all products ordered by creation time (ties broken by ID)
// so that paginated listings are stable.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) Product(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, &domain.NotFoundError{Entity: "product", ID: id}
	}
	return cloneProduct(p), nil
}

func (s *Store) CreateProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = cloneProduct(p)
	return p
}

func (s *Store) SaveProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return &domain.NotFoundError{Entity: "product", ID: p.ID}
	}
	s.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return &domain.NotFoundError{Entity: "product", ID: id}
	}
	delete(s.products, id)
	return nil
}

// DecrementStock is the atomic commit point of order placement. Every line is
// validated (existence first, then stock) before any decrement is applied; on
// failure no product is changed. The returned products carry the price and
// name snapshots for the order lines.
func (s *Store) DecrementStock(items []domain.CartItem) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]domain.Product, len(items))
	for i, item := range items {
		p, ok := s.products[item.ProductID]
		if !ok {
			return nil, &domain.NotFoundError{Entity: "product", ID: item.ProductID}
		}
		products[i] = p
	}
	for i, item := range items {
		if products[i].Stock < item.Quantity {
			return nil, &domain.InsufficientStockError{
				ProductID:   products[i].ID,
				ProductName: products[i].Name,
			}
		}
	}

	now := time.Now().UTC()
	for i, item := range items {
		p := products[i]
		p.Stock -= item.Quantity
		p.UpdatedAt = now
		s.products[p.ID] = p
		products[i] = cloneProduct(p)
	}
	return products, nil
}
