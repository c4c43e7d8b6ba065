package repository

import (
	"context"

	"github.com/flixme/flixme-api/internal/domain/entity"
)

// MovieRepository defines read access to the movie collection plus the bulk
// insert used by the seeder. The catalog is immutable through the API.
type MovieRepository interface {
	List(ctx context.Context) ([]entity.Movie, error)
	GetByTitle(ctx context.Context, title string) (*entity.Movie, error)
	GetGenre(ctx context.Context, name string) (*entity.Genre, error)
	GetDirector(ctx context.Context, name string) (*entity.Director, error)
	InsertMany(ctx context.Context, movies []entity.Movie) error
}
