package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flixme/flixme-api/internal/domain/entity"
	"github.com/flixme/flixme-api/internal/domain/repository"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{collection: db.Collection(collection)}
}

// Create inserts the user. Username uniqueness is guaranteed by the unique
// index from the migrations, so a concurrent duplicate registration surfaces
// here as ErrDuplicateKey instead of racing a pre-check.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []primitive.ObjectID{}
	}

	res, err := r.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update applies a partial $set on the document matching username and returns
// the updated record.
func (r *UserRepository) Update(ctx context.Context, username string, upd entity.UserUpdate) (*entity.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Password != nil {
		set["password"] = *upd.Password
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Birthdate != nil {
		set["birthdate"] = *upd.Birthdate
	}

	return r.findOneAndUpdate(ctx, username, bson.M{"$set": set})
}

// AddFavorite appends a movie id with $addToSet, keeping FavoriteMovies a set
// even when the same id is added twice.
func (r *UserRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{
		"$addToSet": bson.M{"favorite_movies": movieID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
}

// RemoveFavorite pulls every occurrence of the movie id. Removing an absent
// id matches zero array elements and is a successful no-op.
func (r *UserRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{
		"$pull": bson.M{"favorite_movies": movieID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

// Delete removes the document matching username and returns it.
func (r *UserRepository) Delete(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.collection.FindOneAndDelete(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u entity.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, repository.ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
