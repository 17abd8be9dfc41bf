package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_PORT", "DATABASE_URL", "JWT_EXPIRY", "DB_DRIVER", "PASSWORD_HASHER", "BASE_URL", "ALLOWED_ORIGINS", "CLOUDINARY_URL", "REDIS_URL", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "bcrypt", cfg.PasswordHasher)
	assert.Equal(t, time.Duration(0), cfg.JWTExpiry)
	assert.Equal(t, "http://localhost:4000", cfg.BaseURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.CloudinaryEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("BASE_URL", "https://shop.test/")
	t.Setenv("ALLOWED_ORIGINS", " https://a.test , ,https://b.test")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/shop")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, "https://shop.test", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.DatabaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("expiry", func(t *testing.T) {
		t.Setenv("JWT_EXPIRY", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mongo")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("hasher", func(t *testing.T) {
		t.Setenv("PASSWORD_HASHER", "md5")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("origins", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", " , ,")
		_, err := Load()
		assert.Error(t, err)
	})
}
