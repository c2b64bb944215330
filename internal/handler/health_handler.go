package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/utils"
	"github.com/telmart/console_api/pkg/catalog"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	catalogClient *catalog.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalogClient *catalog.Client) *HealthHandler {
	return &HealthHandler{catalogClient: catalogClient}
}

// GetHealth responds with service and catalog backend status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	backendStatus := "connected"
	if err := h.catalogClient.Ping(c.Request.Context()); err != nil {
		backendStatus = "disconnected"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"catalog": gin.H{
			"status": backendStatus,
		},
	})
}
