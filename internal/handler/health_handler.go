package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is the reported service version, overridable at build time with
// -ldflags "-X idvex/internal/handler.Version=...".
var Version = "1.0.0"

// HealthHandler handles health check endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}
