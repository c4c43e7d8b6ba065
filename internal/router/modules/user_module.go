package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flixme/flixme-api/internal/container"
	"github.com/flixme/flixme-api/internal/domain/repository"
	handlers "github.com/flixme/flixme-api/internal/interface/http"
	"github.com/flixme/flixme-api/internal/interface/middleware"
	"github.com/flixme/flixme-api/pkg/helpers"
)

// UserModule wires the account routes.
// Public: POST /api/users (register), POST /api/login
// Protected: GET/PUT/DELETE /api/users/:Username, favorites add/remove

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, users repository.UserRepository) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limiting on the credential-sensitive routes
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.GET("/users/:Username", m.Handler.GetProfile)
		auth.PUT("/users/:Username", m.Handler.UpdateProfile)
		auth.DELETE("/users/:Username", m.Handler.Deregister)
		auth.POST("/users/:Username/favorites/:MovieID", m.Handler.AddFavorite)
		auth.DELETE("/users/:Username/favorites/:MovieID", m.Handler.RemoveFavorite)
	}
}
