// Package auth issues and validates the opaque bearer tokens guarding the
// user, cart and order routes.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/domain"
	"shopapi/internal/store"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

type Store interface {
	UserByEmail(email string) (domain.User, error)
	User(id string) (domain.User, error)
	CreateToken(t store.Token) error
	Token(value string) (store.Token, error)
	DeleteToken(value string) error
}

type Service struct {
	store    Store
	tokenTTL time.Duration
}

func New(s Store, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{store: s, tokenTTL: tokenTTL}
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresIn int
	User      domain.User
}

// Login checks credentials and issues a fresh opaque token.
func (s *Service) Login(email, password string) (Session, error) {
	u, err := s.store.UserByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.issue(u.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:     token,
		ExpiresIn: int(s.tokenTTL.Seconds()),
		User:      u,
	}, nil
}

// Logout revokes the token; revoking an unknown token is not an error.
func (s *Service) Logout(token string) {
	_ = s.store.DeleteToken(token)
}

// Validate resolves a bearer token to its user. Expired tokens are deleted on
// sight.
func (s *Service) Validate(token string) (domain.User, error) {
	t, err := s.store.Token(token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}
	if time.Now().After(t.ExpiresAt) {
		_ = s.store.DeleteToken(token)
		return domain.User{}, ErrInvalidToken
	}
	u, err := s.store.User(t.UserID)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}
	return u, nil
}

func (s *Service) issue(userID string) (string, error) {
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = s.store.CreateToken(store.Token{
			Value:     token,
			UserID:    userID,
			ExpiresAt: now.Add(s.tokenTTL),
			CreatedAt: now,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
