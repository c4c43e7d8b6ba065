package handlers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flixme/flixme-api/internal/domain/entity"
	"github.com/flixme/flixme-api/internal/domain/repository"
)

// memUserRepo is an in-memory stand-in for the Mongo-backed repository. It
// mirrors the store semantics the handlers rely on: unique usernames, set
// semantics for favorites, and delete-returns-document.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	cp.FavoriteMovies = append([]primitive.ObjectID(nil), u.FavoriteMovies...)
	return &cp
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Username]; ok {
		return repository.ErrDuplicateKey
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if u.FavoriteMovies == nil {
		u.FavoriteMovies = []primitive.ObjectID{}
	}
	r.users[u.Username] = copyUser(u)
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *memUserRepo) Update(_ context.Context, username string, upd entity.UserUpdate) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Username != nil && *upd.Username != username {
		if _, taken := r.users[*upd.Username]; taken {
			return nil, repository.ErrDuplicateKey
		}
		delete(r.users, username)
		u.Username = *upd.Username
		r.users[u.Username] = u
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Birthdate != nil {
		u.Birthdate = upd.Birthdate
	}
	u.UpdatedAt = time.Now()
	return copyUser(u), nil
}

func (r *memUserRepo) AddFavorite(_ context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return copyUser(u), nil
		}
	}
	u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	return copyUser(u), nil
}

func (r *memUserRepo) RemoveFavorite(_ context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := u.FavoriteMovies[:0]
	for _, id := range u.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	u.FavoriteMovies = kept
	return copyUser(u), nil
}

func (r *memUserRepo) Delete(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.users, username)
	return copyUser(u), nil
}

type memMovieRepo struct {
	movies []entity.Movie
}

var _ repository.MovieRepository = (*memMovieRepo)(nil)

func (r *memMovieRepo) List(_ context.Context) ([]entity.Movie, error) {
	return append([]entity.Movie(nil), r.movies...), nil
}

func (r *memMovieRepo) GetByTitle(_ context.Context, title string) (*entity.Movie, error) {
	for i := range r.movies {
		if r.movies[i].Title == title {
			m := r.movies[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memMovieRepo) GetGenre(_ context.Context, name string) (*entity.Genre, error) {
	for i := range r.movies {
		if r.movies[i].Genre.Name == name {
			g := r.movies[i].Genre
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memMovieRepo) GetDirector(_ context.Context, name string) (*entity.Director, error) {
	for i := range r.movies {
		if r.movies[i].Director.Name == name {
			d := r.movies[i].Director
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memMovieRepo) InsertMany(_ context.Context, movies []entity.Movie) error {
	r.movies = append(r.movies, movies...)
	return nil
}
