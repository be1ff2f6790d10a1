package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionRequired is a Gin middleware that validates the authentication
// cookie. Requests without a valid session receive 401, never a redirect.
func SessionRequired(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		userID, err := sessions.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired session",
			})
			return
		}

		// Store the principal's user id for later handlers.
		c.Set(userIDKey, userID)

		c.Next()
	}
}
