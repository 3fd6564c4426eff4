package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/domain"
)

type Store interface {
	Users() []domain.User
	User(id string) (domain.User, error)
	UserByEmail(email string) (domain.User, error)
	CreateUser(u domain.User) domain.User
	SaveUser(u domain.User) error
	DeleteUser(id string) error
	SaveCart(c domain.Cart)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

type CreateInput struct {
	Email    string
	Name     string
	Password string
	Address  *domain.Address
}

type UpdateInput struct {
	Email    *string
	Name     *string
	Password *string
	Address  *domain.Address
}

func (s *Service) List() []domain.User {
	return s.store.Users()
}

func (s *Service) Get(id string) (domain.User, error) {
	return s.store.User(id)
}

// Create registers a user and eagerly initializes their empty cart.
func (s *Service) Create(in CreateInput) (domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if _, err := s.store.UserByEmail(email); err == nil {
		return domain.User{}, domain.ErrAlreadyExists
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := s.store.CreateUser(domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hashed),
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	s.store.SaveCart(domain.Cart{
		ID:        "cart-" + u.ID,
		UserID:    u.ID,
		Items:     []domain.CartItem{},
		UpdatedAt: now,
	})
	return u, nil
}

func (s *Service) Update(id string, in UpdateInput) (domain.User, error) {
	u, err := s.store.User(id)
	if err != nil {
		return domain.User{}, err
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if other, err := s.store.UserByEmail(email); err == nil && other.ID != id {
			return domain.User{}, domain.ErrAlreadyExists
		}
		u.Email = email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = string(hashed)
	}
	if in.Address != nil {
		u.Address = in.Address
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveUser(u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) Delete(id string) error {
	return s.store.DeleteUser(id)
}
