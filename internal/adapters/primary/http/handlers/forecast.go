package handlers

import (
	"net/http"

	"forecast-inference-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Forecast(c *gin.Context) {
	var req dto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := dto.ToSeriesBatch(&req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	requestID := c.GetString("request_id")
	result, err := h.inferenceSvc.Forecast(c.Request.Context(), requestID, batch)
	if err != nil {
		log.WithError(err).WithField("request_id", requestID).Warn("forecast failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(requestID, h.inferenceSvc.Metadata(), result))
}
