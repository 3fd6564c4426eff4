package cart

import (
	"sync"
	"time"

	"shopapi/internal/domain"
)

type Store interface {
	Product(id string) (domain.Product, error)
	CartByUser(userID string) domain.Cart
	SaveCart(c domain.Cart)
}

// Service implements the cart mutation workflow. A service-level mutex
// serializes read-modify-write cycles so the no-duplicate-line invariant
// holds under concurrent requests.
type Service struct {
	mu    sync.Mutex
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(userID string) domain.Cart {
	return s.store.CartByUser(userID)
}

// AddItem merges into an existing line (incrementing its quantity) or appends
// a new one. The stock check is against the requested quantity.
func (s *Service) AddItem(userID, productID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, &domain.BadRequestError{Reason: "quantity must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.store.Product(productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if product.Stock < quantity {
		return domain.Cart{}, &domain.InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
	}

	c := s.store.CartByUser(userID)
	if i := indexOf(c.Items, productID); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}
	c.UpdatedAt = time.Now().UTC()
	s.store.SaveCart(c)
	return c, nil
}

// UpdateItem sets a line's quantity to the given absolute value. The stock
// check is against the new quantity, not the delta.
func (s *Service) UpdateItem(userID, productID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, &domain.BadRequestError{Reason: "quantity must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.store.Product(productID)
	if err != nil {
		return domain.Cart{}, err
	}

	c := s.store.CartByUser(userID)
	i := indexOf(c.Items, productID)
	if i < 0 {
		return domain.Cart{}, &domain.NotFoundError{Entity: "cart item", ID: productID}
	}
	if product.Stock < quantity {
		return domain.Cart{}, &domain.InsufficientStockError{ProductID: product.ID, ProductName: product.Name}
	}

	c.Items[i].Quantity = quantity
	c.UpdatedAt = time.Now().UTC()
	s.store.SaveCart(c)
	return c, nil
}

// RemoveItem deletes a single line; removing an absent line is an error.
func (s *Service) RemoveItem(userID, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.store.CartByUser(userID)
	i := indexOf(c.Items, productID)
	if i < 0 {
		return domain.Cart{}, &domain.NotFoundError{Entity: "cart item", ID: productID}
	}

	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.UpdatedAt = time.Now().UTC()
	s.store.SaveCart(c)
	return c, nil
}

// Clear empties the cart. Clearing an already-empty cart is a no-op success.
func (s *Service) Clear(userID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.store.CartByUser(userID)
	c.Items = []domain.CartItem{}
	c.UpdatedAt = time.Now().UTC()
	s.store.SaveCart(c)
	return c
}

func indexOf(items []domain.CartItem, productID string) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
