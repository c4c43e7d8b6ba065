package router

import (
	"github.com/flixme/flixme-api/internal/application"
	"github.com/flixme/flixme-api/internal/container"
	"github.com/flixme/flixme-api/internal/infrastructure/mongodb"
	handlers "github.com/flixme/flixme-api/internal/interface/http"
	"github.com/flixme/flixme-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the container
// singletons and registers every feature module with the registry. Called
// once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()

	userRepo := mongodb.NewUserRepository(db, cfg.UserCol)
	movieRepo := mongodb.NewMovieRepository(db, cfg.MovieCol)

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRabbitPub(), logger)
	movieSvc := application.NewMovieService(movieRepo, container.GetES(), cfg.ESMoviesIndex, logger)

	userHandler := handlers.NewUserHandler(userSvc, logger)
	movieHandler := handlers.NewMovieHandler(movieSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT(), userRepo))
	r.Add(modules.NewMovieModule(movieHandler, container.GetJWT(), userRepo))
	r.Add(modules.NewDebugModule())
}
