package handlers

import (
	"errors"
	"net/http"

	"forecast-inference-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrShapeMismatch),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrUnknownFrequency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Server not accepting work
	case errors.Is(err, domain.ErrServerDraining),
		errors.Is(err, domain.ErrServerStopped),
		errors.Is(err, domain.ErrAuditLogNotAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	// Resource policy
	case errors.Is(err, domain.ErrServerBusy):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrPredictTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
