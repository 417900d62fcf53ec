package database_test

import (
	"context"
	"testing"

	"promptvault-backend/config"
	"promptvault-backend/internal/database"
	"promptvault-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := database.Connect("mysql", "whatever")
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := database.Connect(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))

	assert.True(t, db.Migrator().HasTable("prompts"))
	assert.True(t, db.Migrator().HasIndex(&models.Prompt{}, "idx_prompts_title"))
	assert.NoError(t, database.Ping(context.Background()))
}

func TestRollbackLastDropsPrompts(t *testing.T) {
	db, err := database.Connect(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.RollbackLast(db))
	assert.False(t, db.Migrator().HasTable("prompts"))

	require.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasTable("prompts"))
}

func TestConnectRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &config.Config{RedisAddr: mr.Host(), RedisPort: mr.Port()}
	require.NoError(t, database.ConnectRedis(cfg))
	assert.NotNil(t, database.RedisClient)

	require.NoError(t, database.ConnectRedis(&config.Config{}))
	assert.Nil(t, database.RedisClient)
}
