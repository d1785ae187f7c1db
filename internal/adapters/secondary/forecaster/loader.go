package forecaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"forecast-inference-service/internal/core/domain"
	ports "forecast-inference-service/internal/core/ports/output"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

const (
	metadataFile = "metadata.json"
	paramsFile   = "params.json"
)

// artifactMetadata is the on-disk form of metadata.json.
type artifactMetadata struct {
	SchemaVersion    int       `json:"schema_version"`
	ModelType        string    `json:"model_type"`
	ModelName        string    `json:"model_name"`
	ModelVersion     string    `json:"model_version"`
	Freq             string    `json:"freq"`
	PredictionLength int       `json:"prediction_length"`
	ContextLength    int       `json:"context_length"`
	QuantileLevels   []float64 `json:"quantile_levels"`
}

// Load reads a model bundle from dir and constructs the predictor family the
// metadata names. The bundle is a directory holding metadata.json and
// params.json.
func Load(dir string) (ports.Predictor, error) {
	meta, err := readMetadata(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, err
	}

	rawParams, err := readFile(filepath.Join(dir, paramsFile))
	if err != nil {
		return nil, err
	}

	switch meta.ModelType {
	case domain.ModelTypeSeasonalNaive:
		return newSeasonalNaive(meta, rawParams)
	case domain.ModelTypeLinear:
		return newLinear(meta, rawParams)
	default:
		return nil, fmt.Errorf("%w: unknown model type %q", domain.ErrArtifactIncompatible, meta.ModelType)
	}
}

// LoadWithRetry wraps Load with bounded exponential backoff. Only transient
// read failures are retried; a missing, corrupt or incompatible bundle fails
// the same way on every attempt, so those return immediately.
func LoadWithRetry(ctx context.Context, dir string, attempts uint64, initialInterval time.Duration) (ports.Predictor, error) {
	var predictor ports.Predictor

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialInterval

	operation := func() error {
		p, err := Load(dir)
		if err != nil {
			if isPermanentLoadError(err) {
				return backoff.Permanent(err)
			}
			log.WithError(err).Warn("transient artifact load failure, retrying")
			return err
		}
		predictor = p
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, attempts), ctx))
	if err != nil {
		return nil, err
	}
	return predictor, nil
}

func isPermanentLoadError(err error) bool {
	return errors.Is(err, domain.ErrArtifactNotFound) ||
		errors.Is(err, domain.ErrArtifactCorrupt) ||
		errors.Is(err, domain.ErrArtifactIncompatible)
}

func readMetadata(path string) (domain.ArtifactMetadata, error) {
	raw, err := readFile(path)
	if err != nil {
		return domain.ArtifactMetadata{}, err
	}

	var onDisk artifactMetadata
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		return domain.ArtifactMetadata{}, fmt.Errorf("%w: decode %s: %v", domain.ErrArtifactCorrupt, metadataFile, err)
	}

	if onDisk.SchemaVersion != domain.ArtifactSchemaVersion {
		return domain.ArtifactMetadata{}, fmt.Errorf("%w: schema version %d", domain.ErrArtifactIncompatible, onDisk.SchemaVersion)
	}

	freq, err := domain.ParseFrequency(onDisk.Freq)
	if err != nil {
		return domain.ArtifactMetadata{}, fmt.Errorf("%w: freq: %v", domain.ErrArtifactCorrupt, err)
	}
	if onDisk.PredictionLength <= 0 {
		return domain.ArtifactMetadata{}, fmt.Errorf("%w: prediction_length must be > 0", domain.ErrArtifactCorrupt)
	}
	if onDisk.ContextLength <= 0 {
		return domain.ArtifactMetadata{}, fmt.Errorf("%w: context_length must be > 0", domain.ErrArtifactCorrupt)
	}
	for _, q := range onDisk.QuantileLevels {
		if q <= 0 || q >= 1 {
			return domain.ArtifactMetadata{}, fmt.Errorf("%w: quantile level %v out of (0,1)", domain.ErrArtifactCorrupt, q)
		}
	}

	return domain.ArtifactMetadata{
		SchemaVersion:    onDisk.SchemaVersion,
		ModelType:        onDisk.ModelType,
		ModelName:        onDisk.ModelName,
		ModelVersion:     onDisk.ModelVersion,
		Freq:             freq,
		PredictionLength: onDisk.PredictionLength,
		ContextLength:    onDisk.ContextLength,
		QuantileLevels:   onDisk.QuantileLevels,
	}, nil
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
