package ports

import (
	"context"

	"forecast-inference-service/internal/core/domain"
)

// PredictionLogRepository persists one row per served forecast for offline
// accuracy evaluation. Optional; the server runs without it.
type PredictionLogRepository interface {
	Insert(ctx context.Context, record *domain.PredictionRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.PredictionRecord, error)
}
