package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flixme/flixme-api/internal/domain/entity"
	repo "github.com/flixme/flixme-api/internal/domain/repository"
	"github.com/flixme/flixme-api/pkg/helpers"
	"github.com/flixme/flixme-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidMovieID     = errors.New("invalid movie id")
)

// UserService implements account registration, authentication, profile
// updates, the favorites set, and deregistration.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Rabbit *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, rabbit *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Rabbit: rabbit, Logger: logger}
}

type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	Birthdate *time.Time
}

// Register hashes the password and creates the account. Uniqueness is left to
// the store's unique index; a duplicate surfaces as ErrUsernameTaken even
// under concurrent registrations.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Username:  in.Username,
		Password:  hash,
		Email:     in.Email,
		Birthdate: in.Birthdate,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.enqueueEmail(ctx, u, mailer.TemplateWelcome)
	return u, nil
}

// Login verifies the password against the stored hash and issues a signed,
// time-bound token encoding the username.
func (s *UserService) Login(ctx context.Context, username, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", u.Username).Error("token generation failed")
		}
		return nil, "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}
	return u, token, exp, nil
}

func (s *UserService) GetProfile(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

type UpdateProfileInput struct {
	Username  *string
	Password  *string
	Email     *string
	Birthdate *time.Time
}

// UpdateProfile applies a partial update to the record matching username.
// A new password is re-hashed before it reaches the store.
func (s *UserService) UpdateProfile(ctx context.Context, username string, in UpdateProfileInput) (*entity.User, error) {
	upd := entity.UserUpdate{
		Username:  in.Username,
		Email:     in.Email,
		Birthdate: in.Birthdate,
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		upd.Password = &hash
	}

	u, err := s.Repo.Update(ctx, username, upd)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if errors.Is(err, repo.ErrDuplicateKey) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// AddFavorite adds a movie id to the user's favorites set. Adding the same id
// twice leaves a single entry.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}
	u, err := s.Repo.AddFavorite(ctx, username, oid)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return u, nil
}

// RemoveFavorite removes all occurrences of a movie id from the favorites
// set. Removing an absent id is a successful no-op.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}
	u, err := s.Repo.RemoveFavorite(ctx, username, oid)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	return u, nil
}

// Deregister deletes the account. Deletion is terminal; a later fetch of the
// same username yields not-found.
func (s *UserService) Deregister(ctx context.Context, username string) error {
	u, err := s.Repo.Delete(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.enqueueEmail(ctx, u, mailer.TemplateAccountDeleted)
	return nil
}

// enqueueEmail publishes a notification job; delivery is best-effort and a
// failure never fails the request.
func (s *UserService) enqueueEmail(ctx context.Context, u *entity.User, template string) {
	if s.Rabbit == nil || u.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: template,
		Data:     map[string]any{"Username": u.Username},
	}
	if err := s.Rabbit.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"username": u.Username,
			"template": template,
		}).Warn("email job publish failed")
	}
}
