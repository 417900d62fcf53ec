package seed_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptvault-backend/config"
	"promptvault-backend/internal/api/v1/seed"
	"promptvault-backend/internal/database"
	"promptvault-backend/internal/services"
	"promptvault-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	logger.Log = zap.NewNop()
	database.RedisClient = nil

	db, err := database.Connect(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close() })
}

func callSeed(t *testing.T) (*httptest.ResponseRecorder, seed.SeedResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/seed-new", nil)

	seed.AppendSupplementalSeed(c)

	var resp seed.SeedResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAppendSupplementalSeedTwice(t *testing.T) {
	setupTestDB(t)

	w, resp := callSeed(t)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 6, resp.Added)
	assert.Equal(t, "Added 6 new prompts", resp.Message)

	w, resp = callSeed(t)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Added)
	assert.Equal(t, "Added 0 new prompts", resp.Message)

	total, err := services.CountPrompts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
}

func TestAppendSupplementalSeedAfterInitialize(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.Initialize(context.Background()))

	w, resp := callSeed(t)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Added)
}

func TestAppendSupplementalSeedStorageError(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, database.Close())

	w, _ := callSeed(t)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}
