package metrics

import (
	"forecast-inference-service/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the serving-side prometheus collectors. New registers them on
// its own registry so tests can build isolated instances.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
	ModelInfo       *prometheus.GaugeVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_http_requests_total",
			Help: "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forecast_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "forecast_http_requests_in_flight",
			Help: "Requests currently being served.",
		}),
		ModelInfo: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forecast_model_info",
			Help: "Constant 1 labelled with the loaded model identity.",
		}, []string{"model_name", "model_version", "model_type", "freq"}),
	}
}

// SetModelInfo publishes the loaded artifact identity. Called once after load.
func (m *Metrics) SetModelInfo(meta domain.ArtifactMetadata) {
	m.ModelInfo.WithLabelValues(meta.ModelName, meta.ModelVersion, meta.ModelType, meta.Freq.String()).Set(1)
}
