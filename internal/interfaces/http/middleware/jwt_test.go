package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/backend/internal/infrastructure/auth"
	"github.com/taskflow/backend/internal/infrastructure/config"
)

func newJWTTestSetup(t *testing.T, expiration time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "middleware-test-secret",
		Expiration: expiration,
		Issuer:     "taskflow-test",
	})

	engine := gin.New()
	engine.Use(JWTAuthMiddleware(jwtService))
	engine.GET("/api/v1/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	engine.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine, jwtService
}

func issueTestToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	issued, err := jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "ana@example.com",
		Role:   "USER",
	})
	require.NoError(t, err)
	return issued.Token
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	engine, jwtService := newJWTTestSetup(t, time.Hour)
	token := issueTestToken(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	engine, _ := newJWTTestSetup(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	engine, jwtService := newJWTTestSetup(t, time.Hour)
	token := issueTestToken(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set(AuthHeaderKey, token) // no Bearer prefix
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	engine, jwtService := newJWTTestSetup(t, -time.Minute)
	token := issueTestToken(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	engine, _ := newJWTTestSetup(t, time.Hour)

	login := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, login)
	assert.Equal(t, http.StatusOK, w.Code)

	health := httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, health)
	assert.Equal(t, http.StatusOK, w.Code)
}
