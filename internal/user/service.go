package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tableside/locations-backend/internal/auth"
)

// Service defines business logic related to users.
type Service interface {
	// Login verifies the credentials and returns the matching user.
	// Unknown username and wrong password are indistinguishable to callers.
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}

	// Password mismatch only; no lockout accounting on failed attempts.
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Exists(ctx context.Context, id int) (bool, error) {
	return s.repo.Exists(ctx, id)
}
