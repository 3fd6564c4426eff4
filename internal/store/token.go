package store

import (
	"time"

	"shopapi/internal/domain"
)

// Token is an opaque access token bound to a user.
type Token struct {
	Value     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *Store) CreateToken(t Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[t.Value]; ok {
		return domain.ErrAlreadyExists
	}
	s.tokens[t.Value] = t
	return nil
}

func (s *Store) Token(value string) (Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tokens[value]
	if !ok {
		return Token{}, &domain.NotFoundError{Entity: "token"}
	}
	return t, nil
}

func (s *Store) DeleteToken(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[value]; !ok {
		return &domain.NotFoundError{Entity: "token"}
	}
	delete(s.tokens, value)
	return nil
}
