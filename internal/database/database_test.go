package database_test

import (
	"context"
	"fmt"
	"testing"

	"productsvc/internal/config"
	"productsvc/internal/database"
	"productsvc/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() config.Config {
	return config.Config{
		DBDriver:       config.DriverSQLite,
		DatabaseDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpenConns: 2,
		DBLogLevel:     "silent",
	}
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	cfg := sqliteConfig()

	db, err := database.Open(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(context.Background(), db, cfg))
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	assert.True(t, db.Migrator().HasColumn(&models.Product{}, "quantity_in_stock"))

	assert.NoError(t, database.GormPinger{DB: db}.Ping(context.Background()))
}

func TestOpen_RejectsMemoryDriver(t *testing.T) {
	_, err := database.Open(config.Config{DBDriver: config.DriverMemory})
	assert.Error(t, err)
}
