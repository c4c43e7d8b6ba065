package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flixme/flixme-api/internal/application"
	"github.com/flixme/flixme-api/pkg/response"
)

type MovieHandler struct {
	Svc    *application.MovieService
	Logger *logrus.Logger
}

func NewMovieHandler(svc *application.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{Svc: svc, Logger: logger}
}

func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "could not list movies")
		return
	}
	response.Success(c, http.StatusOK, movies, "movies")
}

func (h *MovieHandler) GetByTitle(c *gin.Context) {
	title := c.Param("Title")
	m, err := h.Svc.GetByTitle(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, application.ErrMovieNotFound) {
			response.Error(c, http.StatusNotFound, "movie not found", nil)
			return
		}
		h.storeError(c, err, "could not load movie")
		return
	}
	response.Success(c, http.StatusOK, m, "movie")
}

func (h *MovieHandler) GetGenre(c *gin.Context) {
	name := c.Param("Name")
	g, err := h.Svc.GetGenre(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, application.ErrMovieNotFound) {
			response.Error(c, http.StatusNotFound, "genre not found", nil)
			return
		}
		h.storeError(c, err, "could not load genre")
		return
	}
	response.Success(c, http.StatusOK, g, "genre")
}

func (h *MovieHandler) GetDirector(c *gin.Context) {
	name := c.Param("Name")
	d, err := h.Svc.GetDirector(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, application.ErrMovieNotFound) {
			response.Error(c, http.StatusNotFound, "director not found", nil)
			return
		}
		h.storeError(c, err, "could not load director")
		return
	}
	response.Success(c, http.StatusOK, d, "director")
}

func (h *MovieHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error(c, http.StatusUnprocessableEntity, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.storeError(c, err, "search failed")
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

func (h *MovieHandler) storeError(c *gin.Context, err error, msg string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error(msg)
	}
	response.Error(c, http.StatusInternalServerError, msg, nil)
}
