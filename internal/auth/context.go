package auth

import "github.com/gin-gonic/gin"

const userIDKey = "userID"

// GetUserID returns the authenticated user's id or 0.
func GetUserID(c *gin.Context) int {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}
