package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/flixme/flixme-api/internal/domain/entity"
	"github.com/flixme/flixme-api/internal/domain/repository"
)

type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *mongo.Database, collection string) *MovieRepository {
	return &MovieRepository{collection: db.Collection(collection)}
}

func (r *MovieRepository) List(ctx context.Context) ([]entity.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	movies := []entity.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetGenre returns the genre sub-document of the first movie whose nested
// genre name matches. Store order decides ties between movies sharing a genre.
func (r *MovieRepository) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	var movie entity.Movie
	err := r.collection.FindOne(ctx, bson.M{"genre.name": name}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

func (r *MovieRepository) GetDirector(ctx context.Context, name string) (*entity.Director, error) {
	var movie entity.Movie
	err := r.collection.FindOne(ctx, bson.M{"director.name": name}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}

func (r *MovieRepository) InsertMany(ctx context.Context, movies []entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	docs := make([]interface{}, len(movies))
	for i := range movies {
		docs[i] = movies[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateKey
	}
	return err
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
