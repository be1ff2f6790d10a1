package request

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// IDParam parses the ":id" path parameter as a positive integer.
// The boolean result is false when the parameter is missing or malformed.
func IDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
