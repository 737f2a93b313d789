package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestSystemHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSystemHandler(nil, zap.NewNop())
	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))

	w := performRequest(t, engine, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(resp.Data, &status))
	assert.Equal(t, "ok", status.Status)
	assert.False(t, status.Timestamp.IsZero())
}

func TestSystemHandler_Health_DatabaseChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	h := NewSystemHandler(&persistence.Database{DB: gormDB}, zap.NewNop())
	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))

	w := performRequest(t, engine, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(resp.Data, &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "up", status.Checks["database"])
	assert.NotEmpty(t, status.Checks["database_pool"])
}
