package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"procook-backend/internal/testutils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// closedDB returns a gorm handle whose pool is already closed, so every ping fails.
func closedDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("pgx", "postgres://nobody@127.0.0.1:1/none?sslmode=disable")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return db
}

func TestHealthReportsDatabaseFailure(t *testing.T) {
	handler := NewHealthHandler(closedDB(t), "1.2.3")
	c, recorder := testutils.CreateTestGinContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	handler.Health(c)

	var body HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &body)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Contains(t, body.Services["database"], "error:")
}

func TestReadyReportsDatabaseFailure(t *testing.T) {
	handler := NewHealthHandler(closedDB(t), "1.2.3")
	c, recorder := testutils.CreateTestGinContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	handler.Ready(c)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &body)
	assert.Equal(t, false, body["ready"])
}

func TestLiveNeedsNoDatabase(t *testing.T) {
	handler := NewHealthHandler(nil, "dev")
	c, recorder := testutils.CreateTestGinContext()
	c.Request = httptest.NewRequest(http.MethodGet, "/health/live", nil)

	handler.Live(c)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
	assert.Equal(t, true, body["alive"])
}
