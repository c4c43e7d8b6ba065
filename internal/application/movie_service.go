package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/flixme/flixme-api/internal/domain/entity"
	repo "github.com/flixme/flixme-api/internal/domain/repository"
)

var ErrMovieNotFound = errors.New("movie not found")

// MovieService serves the read-only catalog plus full-text search when an
// Elasticsearch client is configured.
type MovieService struct {
	Repo    repo.MovieRepository
	ES      *elasticsearch.Client
	ESIndex string
	Logger  *logrus.Logger
}

func NewMovieService(r repo.MovieRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *MovieService {
	return &MovieService{Repo: r, ES: es, ESIndex: esIndex, Logger: logger}
}

func (s *MovieService) List(ctx context.Context) ([]entity.Movie, error) {
	movies, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	m, err := s.Repo.GetByTitle(ctx, title)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return m, nil
}

// GetGenre returns the genre sub-object of the first movie carrying that
// genre name.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*entity.Genre, error) {
	g, err := s.Repo.GetGenre(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return g, nil
}

func (s *MovieService) GetDirector(ctx context.Context, name string) (*entity.Director, error) {
	d, err := s.Repo.GetDirector(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get director: %w", err)
	}
	return d, nil
}

// Search performs a multi_match query over title, description and actors.
// Without a configured Elasticsearch client it returns an empty result.
func (s *MovieService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"Title^2", "Description", "Actors"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// IndexMovies pushes catalog entries into the search index. Used by the
// seeder; indexing failures are logged, not fatal.
func (s *MovieService) IndexMovies(ctx context.Context, movies []entity.Movie) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	for i := range movies {
		m := &movies[i]
		b, _ := json.Marshal(m)
		req := esapi.IndexRequest{
			Index:      s.ESIndex,
			DocumentID: m.ID.Hex(),
			Body:       strings.NewReader(string(b)),
			Refresh:    "false",
		}
		c, cancel := context.WithTimeout(ctx, 3*time.Second)
		res, err := req.Do(c, s.ES)
		cancel()
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("title", m.Title).Warn("es index failed")
			}
			return err
		}
		if res.IsError() && s.Logger != nil {
			s.Logger.WithField("status", res.Status()).WithField("title", m.Title).Warn("es index response error")
		}
		_ = res.Body.Close()
	}
	return nil
}
