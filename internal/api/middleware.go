package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tableside/locations-backend/internal/auth"
	"github.com/tableside/locations-backend/internal/pkg/logger"
	"github.com/tableside/locations-backend/internal/pkg/response"
	"github.com/tableside/locations-backend/internal/user"
)

// RequireAdmin ensures the authenticated user holds the Admin role.
// It MUST be used after auth.SessionRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// Roles are re-read from the store so revocations apply immediately.
		// Only a missing user invalidates the session; a store failure is a 500.
		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			response.Error(c, err)
			c.Abort()
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}

// RequestLogger logs each request with zerolog, replacing gin.Logger().
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log := logger.Get()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
