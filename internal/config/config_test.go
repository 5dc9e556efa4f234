package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "postgres", cfg.DB.User)
	assert.Equal(t, "postgres", cfg.DB.Password)
	assert.Equal(t, "postgres", cfg.DB.Name)
	assert.Equal(t, 1, cfg.DB.MaxOpenConns, "single shared connection by default")
	assert.Equal(t, "8000", cfg.App.HTTPPort)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "users")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "svc", cfg.DB.User)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "users", cfg.DB.Name)
	assert.Equal(t, "9000", cfg.App.HTTPPort)
	assert.True(t, cfg.Redis.Enabled)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "localhost",
		User:     "postgres",
		Password: "postgres",
		Name:     "postgres",
	}

	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=postgres", c.DSN())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DB:  DatabaseConfig{Host: "localhost", User: "postgres", Name: "postgres"},
			App: AppConfig{HTTPPort: "8000"},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing DB host fails", func(t *testing.T) {
		cfg := valid()
		cfg.DB.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing HTTP port fails", func(t *testing.T) {
		cfg := valid()
		cfg.App.HTTPPort = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("enabled rate limit needs positive values", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerSecond = 0
		assert.Error(t, cfg.Validate())
	})
}
