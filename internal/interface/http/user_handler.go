package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flixme/flixme-api/internal/application"
	"github.com/flixme/flixme-api/pkg/response"
	"github.com/flixme/flixme-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Field names follow the public wire format of the API: clients send
// {"Username": ..., "Password": ...}.
type registerRequest struct {
	Username  string     `json:"Username" binding:"required,username"`
	Password  string     `json:"Password" binding:"required"`
	Email     string     `json:"Email" binding:"required,email"`
	Birthdate *time.Time `json:"Birthdate"`
}

type loginRequest struct {
	Username string `json:"Username" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

type updateProfileRequest struct {
	Username  *string    `json:"Username"`
	Password  *string    `json:"Password"`
	Email     *string    `json:"Email"`
	Birthdate *time.Time `json:"Birthdate"`
}

// validate reports rule violations for the fields present in a partial
// update. Absent fields are fine; present fields obey the registration rules.
func (r *updateProfileRequest) validate() map[string]string {
	details := map[string]string{}
	if r.Username != nil && !validation.ValidUsername(*r.Username) {
		details["Username"] = "must be at least 5 alphanumeric characters"
	}
	if r.Password != nil && *r.Password == "" {
		details["Password"] = "must not be empty"
	}
	if r.Email != nil && !validation.ValidEmail(*r.Email) {
		details["Email"] = "must be a valid email"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Error(c, http.StatusConflict, "username already exists", nil)
			return
		}
		h.storeError(c, err, "could not create user")
		return
	}
	response.Success(c, http.StatusCreated, u, "user registered")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.storeError(c, err, "login failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
		"user":       u,
	}, "login successful")
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	username := c.Param("Username")
	u, err := h.Svc.GetProfile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.storeError(c, err, "could not load user")
		return
	}
	response.Success(c, http.StatusOK, u, "profile")
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	username := c.Param("Username")

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	if details := req.validate(); details != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", details)
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), username, application.UpdateProfileInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "username already exists", nil)
		default:
			h.storeError(c, err, "could not update user")
		}
		return
	}
	response.Success(c, http.StatusOK, u, "profile updated")
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	username := c.Param("Username")
	movieID := c.Param("MovieID")

	u, err := h.Svc.AddFavorite(c.Request.Context(), username, movieID)
	if err != nil {
		h.favoriteError(c, err, "could not add favorite")
		return
	}
	response.Success(c, http.StatusOK, u, "favorite added")
}

func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	username := c.Param("Username")
	movieID := c.Param("MovieID")

	u, err := h.Svc.RemoveFavorite(c.Request.Context(), username, movieID)
	if err != nil {
		h.favoriteError(c, err, "could not remove favorite")
		return
	}
	response.Success(c, http.StatusOK, u, "favorite removed")
}

func (h *UserHandler) Deregister(c *gin.Context) {
	username := c.Param("Username")
	if err := h.Svc.Deregister(c.Request.Context(), username); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.storeError(c, err, "could not delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"Username": username}, fmt.Sprintf("%s was deleted", username))
}

func (h *UserHandler) favoriteError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrInvalidMovieID):
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", map[string]string{"MovieID": "must be a valid movie id"})
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found", nil)
	default:
		h.storeError(c, err, msg)
	}
}

// storeError logs the underlying failure and answers with a generic message;
// store errors are never leaked verbatim to clients.
func (h *UserHandler) storeError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error(msg)
	}
	response.Error(c, http.StatusInternalServerError, msg, nil)
}
