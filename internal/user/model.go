package user

import (
	"errors"

	"github.com/tableside/locations-backend/internal/pkg/apperror"
)

// Role names seeded at startup. Roles are a static set.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials deliberately maps to 400 rather than 401 so the
	// response does not disclose whether the username or password failed.
	ErrInvalidCredentials = apperror.BadRequest("Invalid username or password")
	ErrUsernameTaken      = apperror.BadRequest("Username is already taken")
)

// User represents an identity record with its assigned role names.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	Roles        []string
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Principal is the identity associated with an authenticated session,
// computed once at request entry and passed into write-handlers.
type Principal struct {
	ID    int
	Roles []string
}

// IsAdmin reports whether the principal holds the Admin role.
func (p Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// AsPrincipal projects the user to its session principal.
func (u *User) AsPrincipal() Principal {
	return Principal{ID: u.ID, Roles: u.Roles}
}
