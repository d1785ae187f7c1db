package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"forecast-inference-service/internal/core/domain"
)

// MockPredictor is a mock of the Predictor port.
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Metadata() domain.ArtifactMetadata {
	args := m.Called()
	return args.Get(0).(domain.ArtifactMetadata)
}

func (m *MockPredictor) Predict(ctx context.Context, batch domain.SeriesBatch) (domain.ForecastBatch, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(domain.ForecastBatch), args.Error(1)
}

func (m *MockPredictor) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockPredictionLogRepo is a mock of PredictionLogRepository.
type MockPredictionLogRepo struct {
	mock.Mock
}

func (m *MockPredictionLogRepo) Insert(ctx context.Context, record *domain.PredictionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPredictionLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.PredictionRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PredictionRecord), args.Error(1)
}
