package application

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flixme/flixme-api/internal/domain/entity"
	repo "github.com/flixme/flixme-api/internal/domain/repository"
)

type mockUserRepo struct {
	mock.Mock
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, username string, upd entity.UserUpdate) (*entity.User, error) {
	args := m.Called(ctx, username, upd)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, username, movieID)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, username, movieID)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type mockMovieRepo struct {
	mock.Mock
}

var _ repo.MovieRepository = (*mockMovieRepo)(nil)

func (m *mockMovieRepo) List(ctx context.Context) ([]entity.Movie, error) {
	args := m.Called(ctx)
	ms, _ := args.Get(0).([]entity.Movie)
	return ms, args.Error(1)
}

func (m *mockMovieRepo) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	args := m.Called(ctx, title)
	mv, _ := args.Get(0).(*entity.Movie)
	return mv, args.Error(1)
}

func (m *mockMovieRepo) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	args := m.Called(ctx, name)
	g, _ := args.Get(0).(*entity.Genre)
	return g, args.Error(1)
}

func (m *mockMovieRepo) GetDirector(ctx context.Context, name string) (*entity.Director, error) {
	args := m.Called(ctx, name)
	d, _ := args.Get(0).(*entity.Director)
	return d, args.Error(1)
}

func (m *mockMovieRepo) InsertMany(ctx context.Context, movies []entity.Movie) error {
	args := m.Called(ctx, movies)
	return args.Error(0)
}
