package location

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/tableside/locations-backend/internal/user"
)

// SaveLocationRequest carries the validated input for create and update.
// One constrained shape serves both writes; the manager field is admin-gated.
type SaveLocationRequest struct {
	Name       string
	Address    string
	TableCount int
	ManagerID  *int
}

type Service interface {
	// Create persists a new location. Caller must already be authorized as Admin.
	Create(ctx context.Context, req SaveLocationRequest) (*Location, error)
	GetByID(ctx context.Context, id int) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
	// Update applies the request on behalf of the principal, enforcing the
	// ownership policy: admins may edit any location, the assigned manager may
	// edit their own except for reassigning management.
	Update(ctx context.Context, principal user.Principal, id int, req SaveLocationRequest) (*Location, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo        Repository
	userService user.Service
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{repo: repo, userService: userService}
}

// validate checks the field rules shared by create and update, including the
// manager reference. The first failing check wins.
func (s *service) validate(ctx context.Context, req SaveLocationRequest) error {
	// Limits are in characters, not bytes, so multibyte names count correctly.
	if utf8.RuneCountInString(req.Name) > MaxNameLength ||
		utf8.RuneCountInString(req.Address) > MaxAddressLength {
		return ErrNameOrAddressLong
	}
	if req.TableCount < 1 {
		return ErrTableCountInvalid
	}
	if req.ManagerID != nil {
		exists, err := s.userService.Exists(ctx, *req.ManagerID)
		if err != nil {
			return fmt.Errorf("failed to check manager reference: %w", err)
		}
		if !exists {
			return ErrInvalidManagerID
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req SaveLocationRequest) (*Location, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	loc := &Location{
		Name:       req.Name,
		Address:    req.Address,
		TableCount: req.TableCount,
		ManagerID:  req.ManagerID,
	}

	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Location, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, principal user.Principal, id int, req SaveLocationRequest) (*Location, error) {
	// Validation and authorization are fully resolved before any field is
	// mutated, so a rejected request never results in a partial write.
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isAdmin := principal.IsAdmin()
	isManager := loc.ManagerID != nil && *loc.ManagerID == principal.ID

	if !isAdmin && !isManager {
		return nil, ErrForbidden
	}
	if !isAdmin && !sameManager(loc.ManagerID, req.ManagerID) {
		return nil, ErrManagerReassign
	}

	loc.Name = req.Name
	loc.Address = req.Address
	loc.TableCount = req.TableCount
	if isAdmin {
		loc.ManagerID = req.ManagerID
	}

	if err := s.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func sameManager(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
