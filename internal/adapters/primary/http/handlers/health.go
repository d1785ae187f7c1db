package handlers

import (
	"net/http"

	"forecast-inference-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// Healthz is liveness: the process is up.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz is readiness: only a Ready server accepts inference traffic.
func (h *Handler) Readyz(c *gin.Context) {
	state := h.lifecycle.State()
	if state != services.StateReady {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "state": string(state)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "state": string(state), "model": h.inferenceSvc.Metadata().ModelName})
}
