package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "BCRYPT_COST", "DB_MAX_CONN_LIFETIME", "HTTP_LOG_ENABLED", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLife)
	assert.False(t, cfg.HTTPLogEnabled)
	assert.Empty(t, cfg.CORSOrigins())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("DB_MAX_CONN_LIFETIME", "30m")
	t.Setenv("HTTP_LOG_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, ,http://127.0.0.1:5173")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLife)
	assert.True(t, cfg.HTTPLogEnabled)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSOrigins())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "high")
	t.Setenv("HTTP_READ_TIMEOUT", "soon")
	t.Setenv("DEBUG_METRICS_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	assert.False(t, cfg.DebugMetricsEnabled)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "accounts",
		DBSSLMode:  "require",
	}

	assert.Equal(t, "postgres://app:secret@db:5433/accounts?sslmode=require", cfg.PostgresDSN())
}
