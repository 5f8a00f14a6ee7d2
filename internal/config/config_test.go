package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8480", cfg.Port)
	assert.Equal(t, "inkspot", cfg.DBName)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.False(t, cfg.IsProduction())
}

func TestIsProduction(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := Config{
		Port:      "8480",
		JWTSecret: "a-perfectly-long-secret-for-testing-1234",
		DBSSLMode: "require",
	}

	t.Run("Development allows defaults", func(t *testing.T) {
		cfg := Config{Port: "8480", JWTSecret: "short", Env: "development"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Missing port", func(t *testing.T) {
		cfg := base
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing secret", func(t *testing.T) {
		cfg := base
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production rejects default secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production rejects short secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production rejects weak DB password", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production rejects disabled SSL", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "actually-strong-password"
		cfg.DBSSLMode = "disable"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Production passes with hardened values", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "actually-strong-password"
		assert.NoError(t, cfg.Validate())
	})
}
