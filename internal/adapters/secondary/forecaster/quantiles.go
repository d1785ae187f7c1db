package forecaster

import (
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"
)

// gaussianQuantiles builds one path per requested level around the mean path,
// assuming a Normal predictive distribution with the given per-step sigmas.
func gaussianQuantiles(mean, sigmas []float64, levels []float64) map[string][]float64 {
	if len(levels) == 0 {
		return map[string][]float64{}
	}

	quantiles := make(map[string][]float64, len(levels))
	for _, level := range levels {
		path := make([]float64, len(mean))
		for step := range mean {
			dist := distuv.Normal{Mu: mean[step], Sigma: sigmas[step]}
			path[step] = dist.Quantile(level)
		}
		quantiles[quantileKey(level)] = path
	}
	return quantiles
}

// quantileKey formats a level the way forecasting toolkits label quantile
// columns: "0.1", "0.5", "0.9".
func quantileKey(level float64) string {
	return strconv.FormatFloat(level, 'g', -1, 64)
}
