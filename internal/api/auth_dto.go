package api

import (
	"github.com/tableside/locations-backend/internal/user"
)

// LoginRequest is the payload for POST /api/authentication/login.
type LoginRequest struct {
	UserName string `json:"userName" binding:"required,max=50"`
	Password string `json:"password" binding:"required,max=100"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID       int      `json:"id"`
	UserName string   `json:"userName"`
	Roles    []string `json:"roles"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	roles := u.Roles
	if roles == nil {
		// Avoid JSON outputting null for a role-less user
		roles = []string{}
	}

	return UserResponse{
		ID:       u.ID,
		UserName: u.Username,
		Roles:    roles,
	}
}
