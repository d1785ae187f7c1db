package handlers

import (
	"net/http"
	"strconv"

	"forecast-inference-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetModel(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToModelInfoResponse(h.inferenceSvc.Metadata()))
}

func (h *Handler) ListPredictions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := h.inferenceSvc.RecentPredictions(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list predictions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PredictionRecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.ToPredictionRecordResponse(record))
	}

	c.JSON(http.StatusOK, dto.ListPredictionsResponse{Items: items, Total: len(items)})
}
