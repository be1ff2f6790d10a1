package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tableside/locations-backend/internal/auth"
	"github.com/tableside/locations-backend/internal/location"
	locHttp "github.com/tableside/locations-backend/internal/location/http"
	"github.com/tableside/locations-backend/internal/user"
)

// Config holds the dependencies required to assemble the router.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	UserService  user.Service
	LocService   location.Service
	Sessions     *auth.SessionManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, logging, recovery)
// and registering routes for the authentication and location modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	// CORS must allow credentials for the authentication cookie.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// sessionMiddleware: validates the authentication cookie.
	sessionMiddleware := auth.SessionRequired(cfg.Sessions)
	// adminMiddleware: further checks that the principal holds the Admin role.
	adminMiddleware := RequireAdmin(cfg.UserService)

	authHandler := NewAuthHandler(cfg.UserService, cfg.Sessions)
	locHandler := locHttp.NewHandler(cfg.LocService, cfg.UserService)

	apiGroup := r.Group("/api")
	{
		RegisterAuthRoutes(apiGroup, authHandler, sessionMiddleware)
		locHttp.RegisterRoutes(apiGroup, locHandler, sessionMiddleware, adminMiddleware)
	}

	return r
}

// RegisterAuthRoutes registers the authentication endpoint group.
func RegisterAuthRoutes(g *gin.RouterGroup, h *AuthHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/authentication")

	group.POST("/login", h.Login)
	group.GET("/me", authMiddleware, h.Me)
	group.POST("/logout", authMiddleware, h.Logout)
}
