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

// MovieModule wires the read-only catalog routes; all of them require a
// valid bearer token.

type MovieModule struct {
	Handler *handlers.MovieHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewMovieModule(h *handlers.MovieHandler, jwt *helpers.JWTManager, users repository.UserRepository) *MovieModule {
	return &MovieModule{Handler: h, JWT: jwt, Users: users}
}

func (m *MovieModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/movies")
	auth.Use(middleware.Auth(m.JWT, m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/search", m.Handler.Search)
		auth.GET("/:Title", m.Handler.GetByTitle)
		auth.GET("/genre/:Name", m.Handler.GetGenre)
		auth.GET("/director/:Name", m.Handler.GetDirector)
	}
}
