package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forecast-inference-service/internal/core/domain"
	ports "forecast-inference-service/internal/core/ports/output"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const auditInsertTimeout = 5 * time.Second

// InferenceService is the request-handling core: it validates a batch against
// the loaded model schema, bounds concurrency and latency, runs the
// predictor, and optionally records an audit row per forecast. The predictor
// is injected at construction and shared read-only by all requests.
type InferenceService struct {
	predictor      ports.Predictor
	lifecycle      *Lifecycle
	auditLog       ports.PredictionLogRepository // nil when disabled
	slots          chan struct{}
	requestTimeout time.Duration
}

func NewInferenceService(predictor ports.Predictor, lifecycle *Lifecycle, auditLog ports.PredictionLogRepository, maxConcurrent int, requestTimeout time.Duration) *InferenceService {
	if maxConcurrent <= 0 {
		maxConcurrent = 64
	}
	return &InferenceService{
		predictor:      predictor,
		lifecycle:      lifecycle,
		auditLog:       auditLog,
		slots:          make(chan struct{}, maxConcurrent),
		requestTimeout: requestTimeout,
	}
}

func (s *InferenceService) Metadata() domain.ArtifactMetadata {
	return s.predictor.Metadata()
}

// Forecast serves one inference request. Shape and decode failures are
// deterministic and surface to the caller unretried; the server stays Ready.
func (s *InferenceService) Forecast(ctx context.Context, requestID string, batch domain.SeriesBatch) (domain.ForecastBatch, error) {
	done, err := s.lifecycle.BeginRequest()
	if err != nil {
		return domain.ForecastBatch{}, err
	}
	defer done()

	if len(batch.Series) == 0 {
		return domain.ForecastBatch{}, domain.ErrEmptyBatch
	}

	meta := s.predictor.Metadata()
	for i, series := range batch.Series {
		if err := meta.ValidateSeries(series); err != nil {
			return domain.ForecastBatch{}, fmt.Errorf("series %d: %w", i, err)
		}
	}

	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	default:
		return domain.ForecastBatch{}, domain.ErrServerBusy
	}

	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.predictor.Predict(ctx, batch)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.ForecastBatch{}, domain.ErrPredictTimeout
		}
		return domain.ForecastBatch{}, err
	}

	if s.auditLog != nil {
		go s.recordForecasts(requestID, result, time.Since(start))
	}

	return result, nil
}

// RecentPredictions reads back the audit log.
func (s *InferenceService) RecentPredictions(ctx context.Context, limit int) ([]*domain.PredictionRecord, error) {
	if s.auditLog == nil {
		return nil, domain.ErrAuditLogNotAvailable
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.auditLog.ListRecent(ctx, limit)
}

func (s *InferenceService) recordForecasts(requestID string, result domain.ForecastBatch, latency time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), auditInsertTimeout)
	defer cancel()

	meta := s.predictor.Metadata()
	now := time.Now()
	for _, forecast := range result.Forecasts {
		record := &domain.PredictionRecord{
			ID:            uuid.New(),
			RequestID:     requestID,
			ItemID:        forecast.ItemID,
			ModelName:     meta.ModelName,
			ModelVersion:  meta.ModelVersion,
			ForecastStart: forecast.Start,
			Horizon:       forecast.Horizon(),
			LatencyMillis: latency.Milliseconds(),
			CreatedAt:     now,
		}
		if err := s.auditLog.Insert(ctx, record); err != nil {
			log.WithError(err).Warn("prediction audit insert failed")
			return
		}
	}
}
