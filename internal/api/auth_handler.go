package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableside/locations-backend/internal/auth"
	"github.com/tableside/locations-backend/internal/pkg/response"
	"github.com/tableside/locations-backend/internal/user"
)

type AuthHandler struct {
	userService user.Service
	sessions    *auth.SessionManager
}

func NewAuthHandler(userService user.Service, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
	}
}

//
// POST /api/authentication/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.Login(ctx, req.UserName, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Auth cookie so the user stays logged in.
	if err := h.sessions.SignIn(c, u.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to establish session"})
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}

//
// GET /api/authentication/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.userService.GetByID(ctx, auth.GetUserID(c))
	if err != nil {
		// Session was valid but the identity can no longer be resolved.
		// Any other store failure surfaces as a 500, not a logout.
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u))
}

//
// POST /api/authentication/logout
//

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.SignOut(c)
	c.Status(http.StatusOK)
}
