package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tableside/locations-backend/internal/api"
	"github.com/tableside/locations-backend/internal/auth"
	"github.com/tableside/locations-backend/internal/location"
	"github.com/tableside/locations-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	DBPool        *pgxpool.Pool
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	Sessions     *auth.SessionManager
	Hasher       auth.PasswordHasher
	UserRepo     user.Repository
	LocationRepo location.Repository
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Location module
	locRepo := location.NewPgxRepository(cfg.DBPool)
	locService := location.NewService(locRepo, userService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		UserService:  userService,
		LocService:   locService,
		Sessions:     sessions,
	})

	return &Container{
		Router:       router,
		Sessions:     sessions,
		Hasher:       passwordHasher,
		UserRepo:     userRepo,
		LocationRepo: locRepo,
	}
}
