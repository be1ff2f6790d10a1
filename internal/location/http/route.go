package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *LocationHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/locations")

	// Public reads
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// Authenticated writes
	group.PUT("/:id", authMiddleware, h.Update)

	// Admin-only writes
	group.POST("", authMiddleware, adminMiddleware, h.Create)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
