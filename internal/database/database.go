// Package database opens the GORM connection for the configured driver and
// brings the schema up to date.
package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"productsvc/internal/config"
	"productsvc/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database selected by cfg.DBDriver and configures the pool.
func Open(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("driver %q has no SQL database", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger(cfg.DBLogLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	}
	return db, nil
}

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; SQLite uses AutoMigrate.
func Migrate(ctx context.Context, db *gorm.DB, cfg config.Config) error {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return applyMigrations(ctx, cfg.DatabaseDSN)
	case config.DriverSQLite:
		if err := db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
			return fmt.Errorf("failed to auto-migrate database: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("driver %q has no SQL database", cfg.DBDriver)
	}
}

// Pinger checks the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GormPinger adapts a *gorm.DB to Pinger.
type GormPinger struct {
	DB *gorm.DB
}

func (p GormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "[gorm] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
