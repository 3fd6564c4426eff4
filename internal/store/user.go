package store

import (
	"sort"
	"strings"

	"shopapi/internal/domain"
)

// Users returns all users ordered by creation time (ties broken by ID).
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) User(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, &domain.NotFoundError{Entity: "user", ID: id}
	}
	return cloneUser(u), nil
}

// UserByEmail does a linear scan; email comparison is case-insensitive.
func (s *Store) UserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return domain.User{}, &domain.NotFoundError{Entity: "user"}
}

func (s *Store) CreateUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.ID] = cloneUser(u)
	return u
}

func (s *Store) SaveUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return &domain.NotFoundError{Entity: "user", ID: u.ID}
	}
	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return &domain.NotFoundError{Entity: "user", ID: id}
	}
	delete(s.users, id)
	return nil
}
