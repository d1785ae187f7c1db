package ports

import (
	"context"

	"forecast-inference-service/internal/core/domain"
)

// Predictor is the loaded model. Implementations are immutable after
// construction and safe for concurrent use from any number of requests.
type Predictor interface {
	// Metadata returns the artifact schema the model was trained with.
	Metadata() domain.ArtifactMetadata

	// Predict forecasts every series in the batch. It returns
	// domain.ErrShapeMismatch when a series does not match the artifact
	// schema. Failures are deterministic for a given input.
	Predict(ctx context.Context, batch domain.SeriesBatch) (domain.ForecastBatch, error)

	// Close releases model resources. Called once, at shutdown.
	Close() error
}
