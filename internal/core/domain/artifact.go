package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Supported artifact schema versions. Version 1 is the only one today;
// loaders reject anything else as incompatible.
const ArtifactSchemaVersion = 1

// Model family tags carried in artifact metadata.
const (
	ModelTypeSeasonalNaive = "seasonal_naive"
	ModelTypeLinear        = "linear"
)

// ArtifactMetadata describes a trained model bundle: what family it is, the
// series schema it was trained on, and the forecast it produces. It is fixed
// at training time; requests can never override it.
type ArtifactMetadata struct {
	SchemaVersion    int
	ModelType        string
	ModelName        string
	ModelVersion     string
	Freq             Frequency
	PredictionLength int
	ContextLength    int
	QuantileLevels   []float64
}

// ValidateSeries checks one input series against the artifact schema.
func (m ArtifactMetadata) ValidateSeries(s Series) error {
	if !s.Freq.Equal(m.Freq) {
		return fmt.Errorf("%w: series freq %q, model expects %q", ErrShapeMismatch, s.Freq, m.Freq)
	}
	if len(s.Target) < m.ContextLength {
		return fmt.Errorf("%w: series has %d points, model needs at least %d", ErrShapeMismatch, len(s.Target), m.ContextLength)
	}
	if !s.HasFiniteTarget() {
		return fmt.Errorf("%w: series contains non-finite values", ErrShapeMismatch)
	}
	return nil
}

// PredictionRecord is one audit row describing a served forecast.
type PredictionRecord struct {
	ID            uuid.UUID
	RequestID     string
	ItemID        string
	ModelName     string
	ModelVersion  string
	ForecastStart time.Time
	Horizon       int
	LatencyMillis int64
	CreatedAt     time.Time
}
