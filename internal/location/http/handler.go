package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableside/locations-backend/internal/auth"
	"github.com/tableside/locations-backend/internal/location"
	"github.com/tableside/locations-backend/internal/pkg/request"
	"github.com/tableside/locations-backend/internal/pkg/response"
	"github.com/tableside/locations-backend/internal/user"
)

type LocationHandler struct {
	service     location.Service
	userService user.Service
}

func NewHandler(service location.Service, userService user.Service) *LocationHandler {
	return &LocationHandler{
		service:     service,
		userService: userService,
	}
}

// principal resolves the authenticated caller's identity and roles once per
// request. Returns false after writing a 401 when the session's user no
// longer exists, or a 500 when the lookup itself fails.
func (h *LocationHandler) principal(c *gin.Context) (user.Principal, bool) {
	u, err := h.userService.GetByID(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		} else {
			response.Error(c, err)
		}
		return user.Principal{}, false
	}
	return u.AsPrincipal(), true
}

// List returns every location in store order. Public, unpaginated.
func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]LocationResponse, len(locs))
	for i, l := range locs {
		items[i] = NewLocationResponse(l)
	}

	c.JSON(http.StatusOK, items)
}

// Get returns one location by id. Public.
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := request.IDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	loc, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewLocationResponse(loc))
}

// Create adds a new location. The route is gated to admins by middleware.
func (h *LocationHandler) Create(c *gin.Context) {
	var body SaveLocationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	loc, err := h.service.Create(c.Request.Context(), body.toRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/locations/%d", loc.ID))
	c.JSON(http.StatusCreated, NewLocationResponse(loc))
}

// Update replaces a location's fields, subject to the ownership policy
// enforced by the service.
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := request.IDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body SaveLocationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	principal, ok := h.principal(c)
	if !ok {
		return
	}

	loc, err := h.service.Update(c.Request.Context(), principal, id, body.toRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewLocationResponse(loc))
}

// Delete removes a location. The route is gated to admins by middleware.
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := request.IDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusOK)
}
