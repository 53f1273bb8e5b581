package handlers

import (
	"net/http"

	"classbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency snapshot.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	status := h.Monitor.Status()
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "health": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "health": status})
}
