package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
	lockBackend     string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	LockBackend string `json:"lock_backend"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// lockBackend names the write lock in use ("redis" or "mutex").
func NewHealthController(dbHealthChecker func() bool, lockBackend string) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
		lockBackend:     lockBackend,
	}
}

// Check handles GET /health requests.
// Responds 503 while the database is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	status, dbStatus, code := "ok", "connected", http.StatusOK
	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		status, dbStatus, code = "degraded", "disconnected", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:      status,
		Database:    dbStatus,
		LockBackend: h.lockBackend,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
