package dto

import (
	"time"

	"forecast-inference-service/internal/core/domain"
)

type ModelInfoResponse struct {
	SchemaVersion    int       `json:"schema_version"`
	ModelType        string    `json:"model_type"`
	ModelName        string    `json:"model_name"`
	ModelVersion     string    `json:"model_version"`
	Freq             string    `json:"freq"`
	PredictionLength int       `json:"prediction_length"`
	ContextLength    int       `json:"context_length"`
	QuantileLevels   []float64 `json:"quantile_levels"`
}

func ToModelInfoResponse(meta domain.ArtifactMetadata) ModelInfoResponse {
	return ModelInfoResponse{
		SchemaVersion:    meta.SchemaVersion,
		ModelType:        meta.ModelType,
		ModelName:        meta.ModelName,
		ModelVersion:     meta.ModelVersion,
		Freq:             meta.Freq.String(),
		PredictionLength: meta.PredictionLength,
		ContextLength:    meta.ContextLength,
		QuantileLevels:   meta.QuantileLevels,
	}
}

type PredictionRecordResponse struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	ItemID        string    `json:"item_id,omitempty"`
	ModelName     string    `json:"model_name"`
	ModelVersion  string    `json:"model_version"`
	ForecastStart time.Time `json:"forecast_start"`
	Horizon       int       `json:"horizon"`
	LatencyMillis int64     `json:"latency_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToPredictionRecordResponse(record *domain.PredictionRecord) PredictionRecordResponse {
	return PredictionRecordResponse{
		ID:            record.ID.String(),
		RequestID:     record.RequestID,
		ItemID:        record.ItemID,
		ModelName:     record.ModelName,
		ModelVersion:  record.ModelVersion,
		ForecastStart: record.ForecastStart,
		Horizon:       record.Horizon,
		LatencyMillis: record.LatencyMillis,
		CreatedAt:     record.CreatedAt,
	}
}

type ListPredictionsResponse struct {
	Items []PredictionRecordResponse `json:"items"`
	Total int                        `json:"total"`
}
