package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopapi/internal/domain"
)

const defaultLimit = 10

type Store interface {
	Products() []domain.Product
	Product(id string) (domain.Product, error)
	CreateProduct(p domain.Product) domain.Product
	SaveProduct(p domain.Product) error
	DeleteProduct(id string) error
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

type CreateInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  string
	ImageURLs   []string
}

// UpdateInput uses pointers to distinguish absent fields from zero values;
// only the fields listed here are patchable.
type UpdateInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *string
	ImageURLs   []string
}

type ListFilter struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Limit      int
	Offset     int
}

type ListResult struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// List applies the filters over the full catalog, then slices out one page.
// Total counts the filtered set, not the page.
func (s *Service) List(f ListFilter) ListResult {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var filtered []domain.Product
	for _, p := range s.store.Products() {
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}

	page := paginate(filtered, f.Offset, f.Limit)
	return ListResult{Products: page, Total: len(filtered), Limit: f.Limit, Offset: f.Offset}
}

func (s *Service) Get(id string) (domain.Product, error) {
	return s.store.Product(id)
}

func (s *Service) Create(in CreateInput) (domain.Product, error) {
	if in.Price.IsNegative() {
		return domain.Product{}, &domain.BadRequestError{Reason: "price must not be negative"}
	}
	if in.Stock < 0 {
		return domain.Product{}, &domain.BadRequestError{Reason: "stock must not be negative"}
	}

	now := time.Now().UTC()
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		ImageURLs:   in.ImageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.store.CreateProduct(p), nil
}

func (s *Service) Update(id string, in UpdateInput) (domain.Product, error) {
	p, err := s.store.Product(id)
	if err != nil {
		return domain.Product{}, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domain.Product{}, &domain.BadRequestError{Reason: "price must not be negative"}
		}
		p.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return domain.Product{}, &domain.BadRequestError{Reason: "stock must not be negative"}
		}
		p.Stock = *in.Stock
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.ImageURLs != nil {
		p.ImageURLs = in.ImageURLs
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveProduct(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	return s.store.DeleteProduct(id)
}

func matchesSearch(p domain.Product, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func paginate(products []domain.Product, offset, limit int) []domain.Product {
	if offset >= len(products) {
		return []domain.Product{}
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}
