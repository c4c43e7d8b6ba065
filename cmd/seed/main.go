package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/flixme/flixme-api/config"
	"github.com/flixme/flixme-api/internal/application"
	"github.com/flixme/flixme-api/internal/domain/entity"
	"github.com/flixme/flixme-api/internal/domain/repository"
	"github.com/flixme/flixme-api/internal/infrastructure/mongodb"
	"github.com/flixme/flixme-api/pkg/helpers"
)

// Seeds the movie collection from a JSON file and, when Elasticsearch is
// configured, pushes the catalog into the search index.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = mongodb.Disconnect(ctx, db) }()

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", cfg.SeedFile, err)
	}
	var movies []entity.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	movieRepo := mongodb.NewMovieRepository(db, cfg.MovieCol)
	if err := movieRepo.InsertMany(ctx, movies); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			log.Fatalf("catalog already seeded (title index hit); drop the collection to reseed")
		}
		log.Fatalf("failed to seed movies: %v", err)
	}
	fmt.Printf("seeded %d movies into %s.%s\n", len(movies), cfg.MongoDB, cfg.MovieCol)

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("failed to init elasticsearch client: %v", err)
		}
		svc := application.NewMovieService(movieRepo, es, cfg.ESMoviesIndex, logger)
		// re-read so the documents carry their generated ids
		seeded, err := movieRepo.List(ctx)
		if err != nil {
			log.Fatalf("failed to reload seeded movies: %v", err)
		}
		if err := svc.IndexMovies(ctx, seeded); err != nil {
			log.Fatalf("failed to index movies: %v", err)
		}
		fmt.Printf("indexed %d movies into es index %q\n", len(seeded), cfg.ESMoviesIndex)
	}
}
