package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root for the account domain.
// Password always holds a bcrypt hash in storage and is never serialized.
type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Username       string               `bson:"username" json:"Username"`
	Password       string               `bson:"password" json:"-"`
	Email          string               `bson:"email" json:"Email"`
	Birthdate      *time.Time           `bson:"birthdate,omitempty" json:"Birthdate,omitempty"`
	FavoriteMovies []primitive.ObjectID `bson:"favorite_movies" json:"FavoriteMovies"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
}

// UserUpdate carries the optional fields of a partial profile update.
// Nil pointers are left untouched in storage.
type UserUpdate struct {
	Username  *string
	Password  *string // already hashed by the caller
	Email     *string
	Birthdate *time.Time
}
