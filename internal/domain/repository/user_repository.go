package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flixme/flixme-api/internal/domain/entity"
)

// UserRepository defines the user-related document store operations.
// Update and the favorites mutations return the updated document so handlers
// can echo it back without a second round trip.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, username string, upd entity.UserUpdate) (*entity.User, error)
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error)
	Delete(ctx context.Context, username string) (*entity.User, error)
}
