package forecaster

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"forecast-inference-service/internal/core/domain"
)

type seasonalNaiveParams struct {
	SeasonLength  int     `json:"season_length"`
	ResidualSigma float64 `json:"residual_sigma"`
}

// seasonalNaivePredictor repeats the last observed season. The forecast for
// step h is the observation one season before it; uncertainty widens with the
// horizon like a random walk around the fitted residual sigma.
type seasonalNaivePredictor struct {
	meta   domain.ArtifactMetadata
	params seasonalNaiveParams
}

func newSeasonalNaive(meta domain.ArtifactMetadata, rawParams []byte) (*seasonalNaivePredictor, error) {
	var params seasonalNaiveParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrArtifactCorrupt, paramsFile, err)
	}
	if params.SeasonLength <= 0 {
		return nil, fmt.Errorf("%w: season_length must be > 0", domain.ErrArtifactCorrupt)
	}
	if params.ResidualSigma < 0 {
		return nil, fmt.Errorf("%w: residual_sigma must be >= 0", domain.ErrArtifactCorrupt)
	}
	if meta.ContextLength < params.SeasonLength {
		return nil, fmt.Errorf("%w: context_length %d shorter than season_length %d",
			domain.ErrArtifactIncompatible, meta.ContextLength, params.SeasonLength)
	}
	return &seasonalNaivePredictor{meta: meta, params: params}, nil
}

func (p *seasonalNaivePredictor) Metadata() domain.ArtifactMetadata { return p.meta }

func (p *seasonalNaivePredictor) Close() error { return nil }

func (p *seasonalNaivePredictor) Predict(ctx context.Context, batch domain.SeriesBatch) (domain.ForecastBatch, error) {
	forecasts := make([]domain.Forecast, 0, len(batch.Series))
	for _, series := range batch.Series {
		if err := ctx.Err(); err != nil {
			return domain.ForecastBatch{}, err
		}
		if err := p.meta.ValidateSeries(series); err != nil {
			return domain.ForecastBatch{}, err
		}
		forecasts = append(forecasts, p.forecastOne(series))
	}
	return domain.ForecastBatch{Forecasts: forecasts}, nil
}

func (p *seasonalNaivePredictor) forecastOne(series domain.Series) domain.Forecast {
	horizon := p.meta.PredictionLength
	season := p.params.SeasonLength
	target := series.Target

	mean := make([]float64, horizon)
	sigmas := make([]float64, horizon)
	for h := 0; h < horizon; h++ {
		// Index of the same phase in the last observed season. When the
		// horizon exceeds one season the pattern repeats.
		offset := season - (h % season)
		mean[h] = target[len(target)-offset]
		sigmas[h] = p.params.ResidualSigma * math.Sqrt(float64(h)+1)
	}

	return domain.Forecast{
		ItemID:    series.ItemID,
		Start:     series.End(),
		Freq:      series.Freq,
		Mean:      mean,
		Quantiles: gaussianQuantiles(mean, sigmas, p.meta.QuantileLevels),
	}
}
