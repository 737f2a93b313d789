package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/infrastructure/persistence"
)

// HealthStatus describes the service health payload
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db     *persistence.Database
	logger *zap.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger.Named("system_handler"),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{},
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			h.logger.Warn("Database health check failed", zap.Error(err))
			status.Status = "degraded"
			status.Checks["database"] = "down"
		} else {
			status.Checks["database"] = "up"
			if stats, err := h.db.Stats(); err == nil {
				status.Checks["database_pool"] = fmt.Sprintf("%d open, %d in use, %d idle",
					stats.OpenConnections, stats.InUse, stats.Idle)
			}
		}
	}

	h.Success(c, status)
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
