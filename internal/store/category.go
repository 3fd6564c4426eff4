package store

import (
	"sort"

	"shopapi/internal/domain"
)

// Categories returns all categories ordered by name (ties broken by ID).
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) Category(id string) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, &domain.NotFoundError{Entity: "category", ID: id}
	}
	return cloneCategory(c), nil
}

func (s *Store) CreateCategory(c domain.Category) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[c.ID] = cloneCategory(c)
	return c
}

func (s *Store) SaveCategory(c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[c.ID]; !ok {
		return &domain.NotFoundError{Entity: "category", ID: c.ID}
	}
	s.categories[c.ID] = cloneCategory(c)
	return nil
}

func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return &domain.NotFoundError{Entity: "category", ID: id}
	}
	delete(s.categories, id)
	return nil
}
