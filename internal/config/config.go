// Package config loads service settings from the environment and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds runtime configuration.
type Config struct {
	AppPort            string
	DBDriver           string
	DatabaseDSN        string
	DBMaxOpenConns     int
	DBMaxIdleConns     int
	DBConnMaxLifetime  time.Duration
	DBLogLevel         string
	CORSAllowedOrigins string
	JWTSecret          string
	SeedProducts       bool
	ShutdownTimeout    time.Duration
}

// New returns a viper instance with every default registered and environment
// variables bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=products port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SEED_PRODUCTS", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// Load reads the optional config file and builds a Config. A missing file is
// not an error; environment variables win over file values.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		AppPort:            v.GetString("APP_PORT"),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:        v.GetString("DATABASE_DSN"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		DBLogLevel:         strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		CORSAllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		SeedProducts:       v.GetBool("SEED_PRODUCTS"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBDriver != DriverMemory && cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN is required for driver %s", cfg.DBDriver)
	}
	return cfg, nil
}
