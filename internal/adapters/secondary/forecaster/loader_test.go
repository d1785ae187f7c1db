package forecaster

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"forecast-inference-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, metadata, params string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, metadataFile), []byte(metadata), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, paramsFile), []byte(params), 0o644))
	return dir
}

const seasonalNaiveMetadata = `{
	"schema_version": 1,
	"model_type": "seasonal_naive",
	"model_name": "demand-daily",
	"model_version": "3",
	"freq": "D",
	"prediction_length": 7,
	"context_length": 14,
	"quantile_levels": [0.1, 0.5, 0.9]
}`

const seasonalNaiveParamsJSON = `{"season_length": 7, "residual_sigma": 1.5}`

func TestLoadSeasonalNaive(t *testing.T) {
	dir := writeArtifact(t, seasonalNaiveMetadata, seasonalNaiveParamsJSON)

	p, err := Load(dir)
	require.NoError(t, err)
	defer p.Close()

	meta := p.Metadata()
	assert.Equal(t, domain.ModelTypeSeasonalNaive, meta.ModelType)
	assert.Equal(t, "demand-daily", meta.ModelName)
	assert.Equal(t, 7, meta.PredictionLength)
	assert.Equal(t, 14, meta.ContextLength)
	assert.True(t, meta.Freq.Equal(domain.MustFrequency("D")))
}

func TestLoadLinear(t *testing.T) {
	metadata := `{
		"schema_version": 1,
		"model_type": "linear",
		"model_name": "cpu-hourly",
		"model_version": "1",
		"freq": "H",
		"prediction_length": 2,
		"context_length": 3,
		"quantile_levels": [0.5]
	}`
	params := `{
		"weights": [[0, 0, 1], [0, 1, 0]],
		"intercepts": [0.5, -0.5],
		"sigmas": [1.0, 2.0]
	}`
	dir := writeArtifact(t, metadata, params)

	p, err := Load(dir)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, domain.ModelTypeLinear, p.Metadata().ModelType)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestLoadMissingParams(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, metadataFile), []byte(seasonalNaiveMetadata), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestLoadCorruptMetadata(t *testing.T) {
	dir := writeArtifact(t, `{not json`, seasonalNaiveParamsJSON)

	_, err := Load(dir)
	assert.ErrorIs(t, err, domain.ErrArtifactCorrupt)
}

func TestLoadCorruptParams(t *testing.T) {
	dir := writeArtifact(t, seasonalNaiveMetadata, `{"season_length": "seven"}`)

	_, err := Load(dir)
	assert.ErrorIs(t, err, domain.ErrArtifactCorrupt)
}

func TestLoadUnsupportedSchemaVersion(t *testing.T) {
	metadata := `{
		"schema_version": 99,
		"model_type": "seasonal_naive",
		"freq": "D",
		"prediction_length": 7,
		"context_length": 14
	}`
	dir := writeArtifact(t, metadata, seasonalNaiveParamsJSON)

	_, err := Load(dir)
	assert.ErrorIs(t, err, domain.ErrArtifactIncompatible)
}

func TestLoadUnknownModelType(t *testing.T) {
	metadata := `{
		"schema_version": 1,
		"model_type": "deep_transformer",
		"freq": "D",
		"prediction_length": 7,
		"context_length": 14
	}`
	dir := writeArtifact(t, metadata, `{}`)

	_, err := Load(dir)
	assert.ErrorIs(t, err, domain.ErrArtifactIncompatible)
}

func TestLoadBadQuantileLevel(t *testing.T) {
	metadata := `{
		"schema_version": 1,
		"model_type": "seasonal_naive",
		"freq": "D",
		"prediction_length": 7,
		"context_length": 14,
		"quantile_levels": [1.5]
	}`
	dir := writeArtifact(t, metadata, seasonalNaiveParamsJSON)

	_, err := Load(dir)
	assert.ErrorIs(t, err, domain.ErrArtifactCorrupt)
}

func TestLoadWithRetryDoesNotRetryPermanentFailures(t *testing.T) {
	start := time.Now()
	_, err := LoadWithRetry(context.Background(), filepath.Join(t.TempDir(), "missing"), 5, 200*time.Millisecond)

	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	// A permanent failure short-circuits; five backoff rounds would take
	// far longer than this.
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestLoadWithRetrySucceeds(t *testing.T) {
	dir := writeArtifact(t, seasonalNaiveMetadata, seasonalNaiveParamsJSON)

	p, err := LoadWithRetry(context.Background(), dir, 3, 10*time.Millisecond)
	require.NoError(t, err)
	assert.NotNil(t, p)
	p.Close()
}
