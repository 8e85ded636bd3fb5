package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("SEARCH_DEFAULT_RADIUS_KM", "2.5")
	t.Setenv("SEARCH_MAX_PAGE_SIZE", "50")
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "s3cret")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, 2.5, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, 10, cfg.Search.DefaultPageSize)
	assert.Equal(t, 50, cfg.Search.MaxPageSize)
	assert.Equal(t, "s3cret", cfg.WhatsApp.VerifyToken)
	assert.Equal(t, 7*24*time.Hour, cfg.MinIO.PresignExpiry)
	assert.Equal(t, "production", cfg.Logger.Mode)
}

func TestMinIOEnabled(t *testing.T) {
	assert.False(t, MinIOConfig{}.Enabled())
	assert.True(t, MinIOConfig{Endpoint: "localhost:9000"}.Enabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	t.Setenv(key, "0.75")
	assert.Equal(t, 0.75, getEnvFloat(key, 1))

	t.Setenv(key, "NaN-ish")
	assert.Equal(t, 1.0, getEnvFloat(key, 1))
}
