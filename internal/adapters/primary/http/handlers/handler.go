package handlers

import (
	"forecast-inference-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	inferenceSvc *services.InferenceService
	lifecycle    *services.Lifecycle
}

func New(inferenceSvc *services.InferenceService, lifecycle *services.Lifecycle) *Handler {
	return &Handler{
		inferenceSvc: inferenceSvc,
		lifecycle:    lifecycle,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Inference
	r.POST("/forecast", h.Forecast)

	// Loaded model metadata
	r.GET("/model", h.GetModel)

	// Prediction audit log (503s unless configured)
	r.GET("/predictions", h.ListPredictions)
}
