package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "flixme", cfg.MongoDB)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "movies", cfg.MovieCol)
	assert.Equal(t, "users", cfg.UserCol)
}

func TestMongoMigrateURL(t *testing.T) {
	cfg := &Config{MongoURI: "mongodb://localhost:27017", MongoDB: "flixme"}
	assert.Equal(t, "mongodb://localhost:27017/flixme", cfg.MongoMigrateURL())

	cfg = &Config{MongoURI: "mongodb://localhost:27017/", MongoDB: "flixme"}
	assert.Equal(t, "mongodb://localhost:27017/flixme", cfg.MongoMigrateURL())

	cfg = &Config{MongoURI: "mongodb://localhost:27017?replicaSet=rs0", MongoDB: "flixme"}
	assert.Equal(t, "mongodb://localhost:27017/flixme?replicaSet=rs0", cfg.MongoMigrateURL())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "https://a.example, https://b.example ,"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	cfg = &Config{}
	assert.Empty(t, cfg.CORSOrigins())
}

func TestJWTTTLFromEnv(t *testing.T) {
	t.Setenv("JWT_TTL", "2h")
	cfg := Load()
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
}
