package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"productsvc/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no stray config.yaml is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load(config.New())

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, "http://localhost:4200", cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Empty(t, cfg.JWTSecret)
	assert.False(t, cfg.SeedProducts)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file:test.db")
	t.Setenv("SEED_PRODUCTS", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := config.Load(config.New())

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:test.db", cfg.DatabaseDSN)
	assert.True(t, cfg.SeedProducts)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := []byte("DB_DRIVER: memory\nCORS_ALLOWED_ORIGINS: https://shop.example.com\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := config.Load(config.New())

	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.DBDriver)
	assert.Equal(t, "https://shop.example.com", cfg.CORSAllowedOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load(config.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}
