// Package order implements the order-placement workflow and the order status
// state machine.
package order

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopapi/internal/domain"
)

const defaultLimit = 10

type Store interface {
	User(id string) (domain.User, error)
	CartByUser(userID string) domain.Cart
	SaveCart(c domain.Cart)
	DecrementStock(items []domain.CartItem) ([]domain.Product, error)
	Orders() []domain.Order
	OrdersByUser(userID string) []domain.Order
	Order(id string) (domain.Order, error)
	CreateOrder(o domain.Order) domain.Order
	SaveOrder(o domain.Order) error
}

// Service serializes its workflows with a mutex so that two placements for
// the same user cannot interleave between the cart read and the cart clear;
// the all-or-nothing stock decrement itself is atomic inside the store.
type Service struct {
	mu    sync.Mutex
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

type PlaceInput struct {
	UserID          string
	ShippingAddress *domain.Address
}

// Place converts the user's cart into an order. Checks run in a fixed order:
// user exists, cart non-empty, every line's product exists, every line's
// quantity within stock. The entire cart is validated before any stock is
// decremented, so a failing line leaves every product untouched. On success
// the order is created in status pending with price and name snapshots, stock
// is decremented per line, and the cart is emptied (not deleted).
func (s *Service) Place(in PlaceInput) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.store.User(in.UserID)
	if err != nil {
		return domain.Order{}, err
	}

	cart := s.store.CartByUser(in.UserID)
	if len(cart.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	products, err := s.store.DecrementStock(cart.Items)
	if err != nil {
		return domain.Order{}, err
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, len(cart.Items))
	for i, line := range cart.Items {
		p := products[i]
		items[i] = domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    line.Quantity,
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	addr := in.ShippingAddress
	if addr == nil {
		addr = user.Address
	}

	now := time.Now().UTC()
	order := s.store.CreateOrder(domain.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Items:           items,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		ShippingAddress: addr,
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	cart.Items = []domain.CartItem{}
	cart.UpdatedAt = now
	s.store.SaveCart(cart)

	return order, nil
}

// UpdateStatus applies one transition of the status machine. Stock is not
// restored on cancellation.
func (s *Service) UpdateStatus(orderID string, next domain.OrderStatus) (domain.Order, error) {
	if !next.Valid() {
		return domain.Order{}, &domain.BadRequestError{Reason: "unknown order status"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.store.Order(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.Order{}, &domain.StatusTransitionError{From: order.Status, To: next}
	}

	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveOrder(order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *Service) Get(id string) (domain.Order, error) {
	return s.store.Order(id)
}

type ListFilter struct {
	UserID string
	Status domain.OrderStatus
	Limit  int
	Offset int
}

type ListResult struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// List returns orders newest first, optionally filtered by user and status.
func (s *Service) List(f ListFilter) ListResult {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var all []domain.Order
	if f.UserID != "" {
		all = s.store.OrdersByUser(f.UserID)
	} else {
		all = s.store.Orders()
	}
	if f.Status != "" {
		filtered := all[:0]
		for _, o := range all {
			if o.Status == f.Status {
				filtered = append(filtered, o)
			}
		}
		all = filtered
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	page := all
	if f.Offset >= len(page) {
		page = []domain.Order{}
	} else {
		end := f.Offset + f.Limit
		if end > len(page) {
			end = len(page)
		}
		page = page[f.Offset:end]
	}
	return ListResult{Orders: page, Total: len(all), Limit: f.Limit, Offset: f.Offset}
}
