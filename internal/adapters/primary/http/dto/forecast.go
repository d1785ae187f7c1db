package dto

import (
	"fmt"
	"time"

	"forecast-inference-service/internal/core/domain"
)

// Accepted layouts for series start timestamps. Forecast datasets commonly
// carry date-only starts for daily and coarser frequencies.
var startLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

type SeriesRequest struct {
	ItemID string    `json:"item_id"`
	Start  string    `json:"start" binding:"required"`
	Freq   string    `json:"freq" binding:"required"`
	Target []float64 `json:"target" binding:"required"`
}

type ForecastRequest struct {
	Instances []SeriesRequest `json:"instances" binding:"required"`
}

type ForecastItemResponse struct {
	ItemID    string               `json:"item_id,omitempty"`
	Start     string               `json:"start"`
	Freq      string               `json:"freq"`
	Mean      []float64            `json:"mean"`
	Quantiles map[string][]float64 `json:"quantiles,omitempty"`
}

type ForecastResponse struct {
	RequestID    string                 `json:"request_id"`
	ModelName    string                 `json:"model_name"`
	ModelVersion string                 `json:"model_version"`
	Forecasts    []ForecastItemResponse `json:"forecasts"`
}

// ToSeriesBatch decodes the wire payload into the domain batch. All decode
// failures map to domain.ErrMalformedRequest.
func ToSeriesBatch(req *ForecastRequest) (domain.SeriesBatch, error) {
	series := make([]domain.Series, 0, len(req.Instances))
	for i, instance := range req.Instances {
		start, err := parseStart(instance.Start)
		if err != nil {
			return domain.SeriesBatch{}, fmt.Errorf("%w: instance %d: %v", domain.ErrMalformedRequest, i, err)
		}
		freq, err := domain.ParseFrequency(instance.Freq)
		if err != nil {
			return domain.SeriesBatch{}, fmt.Errorf("%w: instance %d: %v", domain.ErrMalformedRequest, i, err)
		}
		if len(instance.Target) == 0 {
			return domain.SeriesBatch{}, fmt.Errorf("%w: instance %d: empty target", domain.ErrMalformedRequest, i)
		}
		series = append(series, domain.Series{
			ItemID: instance.ItemID,
			Start:  start,
			Freq:   freq,
			Target: instance.Target,
		})
	}
	return domain.SeriesBatch{Series: series}, nil
}

func ToForecastResponse(requestID string, meta domain.ArtifactMetadata, batch domain.ForecastBatch) ForecastResponse {
	items := make([]ForecastItemResponse, 0, len(batch.Forecasts))
	for _, forecast := range batch.Forecasts {
		items = append(items, ForecastItemResponse{
			ItemID:    forecast.ItemID,
			Start:     forecast.Start.Format(time.RFC3339),
			Freq:      forecast.Freq.String(),
			Mean:      forecast.Mean,
			Quantiles: forecast.Quantiles,
		})
	}
	return ForecastResponse{
		RequestID:    requestID,
		ModelName:    meta.ModelName,
		ModelVersion: meta.ModelVersion,
		Forecasts:    items,
	}
}

func parseStart(raw string) (time.Time, error) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable start %q", raw)
}
