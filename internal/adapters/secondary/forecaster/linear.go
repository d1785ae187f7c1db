package forecaster

import (
	"context"
	"encoding/json"
	"fmt"

	"forecast-inference-service/internal/core/domain"

	"gonum.org/v1/gonum/mat"
)

type linearParams struct {
	// Weights is prediction_length rows of context_length coefficients.
	Weights    [][]float64 `json:"weights"`
	Intercepts []float64   `json:"intercepts"`
	Sigmas     []float64   `json:"sigmas"`
}

// linearPredictor maps the last context_length observations to the forecast
// path through a fitted weight matrix, one row per horizon step.
type linearPredictor struct {
	meta    domain.ArtifactMetadata
	weights *mat.Dense
	bias    *mat.VecDense
	sigmas  []float64
}

func newLinear(meta domain.ArtifactMetadata, rawParams []byte) (*linearPredictor, error) {
	var params linearParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrArtifactCorrupt, paramsFile, err)
	}

	horizon := meta.PredictionLength
	if len(params.Weights) != horizon {
		return nil, fmt.Errorf("%w: weights has %d rows, expected %d", domain.ErrArtifactCorrupt, len(params.Weights), horizon)
	}
	if len(params.Intercepts) != horizon {
		return nil, fmt.Errorf("%w: intercepts has %d entries, expected %d", domain.ErrArtifactCorrupt, len(params.Intercepts), horizon)
	}
	if len(params.Sigmas) != horizon {
		return nil, fmt.Errorf("%w: sigmas has %d entries, expected %d", domain.ErrArtifactCorrupt, len(params.Sigmas), horizon)
	}

	flat := make([]float64, 0, horizon*meta.ContextLength)
	for row, coeffs := range params.Weights {
		if len(coeffs) != meta.ContextLength {
			return nil, fmt.Errorf("%w: weights row %d has %d coefficients, expected %d",
				domain.ErrArtifactCorrupt, row, len(coeffs), meta.ContextLength)
		}
		flat = append(flat, coeffs...)
	}
	for _, sigma := range params.Sigmas {
		if sigma < 0 {
			return nil, fmt.Errorf("%w: sigmas must be >= 0", domain.ErrArtifactCorrupt)
		}
	}

	return &linearPredictor{
		meta:    meta,
		weights: mat.NewDense(horizon, meta.ContextLength, flat),
		bias:    mat.NewVecDense(horizon, params.Intercepts),
		sigmas:  params.Sigmas,
	}, nil
}

func (p *linearPredictor) Metadata() domain.ArtifactMetadata { return p.meta }

func (p *linearPredictor) Close() error { return nil }

func (p *linearPredictor) Predict(ctx context.Context, batch domain.SeriesBatch) (domain.ForecastBatch, error) {
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

func (p *linearPredictor) forecastOne(series domain.Series) domain.Forecast {
	window := series.Target[len(series.Target)-p.meta.ContextLength:]

	var out mat.VecDense
	out.MulVec(p.weights, mat.NewVecDense(len(window), window))
	out.AddVec(&out, p.bias)

	mean := make([]float64, p.meta.PredictionLength)
	copy(mean, out.RawVector().Data)

	return domain.Forecast{
		ItemID:    series.ItemID,
		Start:     series.End(),
		Freq:      series.Freq,
		Mean:      mean,
		Quantiles: gaussianQuantiles(mean, p.sigmas, p.meta.QuantileLevels),
	}
}
