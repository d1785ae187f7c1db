package domain

import (
	"math"
	"time"
)

// Series is one input time series: observations sampled at Freq starting at
// Start. ItemID is caller-assigned and echoed back on the forecast.
type Series struct {
	ItemID string
	Start  time.Time
	Freq   Frequency
	Target []float64
}

// End is the timestamp of the first period after the last observation, which
// is where the forecast begins.
func (s Series) End() time.Time {
	return s.Freq.Step(s.Start, len(s.Target))
}

// HasFiniteTarget reports whether every observation is a finite number.
func (s Series) HasFiniteTarget() bool {
	for _, v := range s.Target {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// SeriesBatch is the unit of one inference call.
type SeriesBatch struct {
	Series []Series
}

// Forecast is the prediction for a single series: a mean path of Horizon
// points starting at Start, plus one path per quantile level.
type Forecast struct {
	ItemID    string
	Start     time.Time
	Freq      Frequency
	Mean      []float64
	Quantiles map[string][]float64
}

// Horizon is the number of forecast points.
func (f Forecast) Horizon() int { return len(f.Mean) }

// ForecastBatch holds one Forecast per input series, in input order.
type ForecastBatch struct {
	Forecasts []Forecast
}
