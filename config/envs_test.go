package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("MAZE_TEST_UNSET_KEY", "fallback"))
		assert.Equal(t, 7, getEnvAsIntWithDefault("MAZE_TEST_UNSET_KEY", 7))
	})

	t.Run("value when set", func(t *testing.T) {
		t.Setenv("MAZE_TEST_DIM", "64")
		t.Setenv("MAZE_TEST_MODE", "debug")
		assert.Equal(t, 64, getEnvAsIntWithDefault("MAZE_TEST_DIM", 7))
		assert.Equal(t, 64, mustGetEnvAsInt("MAZE_TEST_DIM"))
		assert.Equal(t, "debug", getEnvWithDefault("MAZE_TEST_MODE", "release"))
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "27017")
	t.Setenv("DB_USER", "maze")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MAX_MAZE_DIMENSION", "50")

	cfg := Load()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 27017, cfg.DBPort)
	assert.Equal(t, "mazes", cfg.DBName)
	assert.Equal(t, 8080, cfg.RESTPort)
	assert.Equal(t, 50, cfg.MaxMazeDimension)
	assert.Equal(t, "maze-solver", cfg.JWTIssuer)
	assert.Equal(t, cfg, Envs)
}
