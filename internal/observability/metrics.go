package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the prediction pipeline.
type Metrics struct {
	PredictionsTotal   prometheus.Counter
	PredictionErrors   prometheus.Counter
	PredictionDuration prometheus.Histogram
	LowVisibilityFlags prometheus.Counter
	HistoryWrites      *prometheus.CounterVec // label: outcome={success,error}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PredictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydrosense",
			Name:      "predictions_total",
			Help:      "Total prediction requests served successfully.",
		}),
		PredictionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydrosense",
			Name:      "prediction_errors_total",
			Help:      "Total prediction requests that failed.",
		}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hydrosense",
			Name:      "prediction_duration_seconds",
			Help:      "Duration of a full encode-predict-compare-chart pass.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		LowVisibilityFlags: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hydrosense",
			Name:      "low_visibility_flags_total",
			Help:      "Total pollutants flagged as low-visibility on the chart.",
		}),
		HistoryWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hydrosense",
			Name:      "history_writes_total",
			Help:      "Prediction history inserts by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.PredictionsTotal,
		m.PredictionErrors,
		m.PredictionDuration,
		m.LowVisibilityFlags,
		m.HistoryWrites,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default registry
// to avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PredictionsTotal:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydrosense", Name: "predictions_total"}),
		PredictionErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydrosense", Name: "prediction_errors_total"}),
		PredictionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "hydrosense", Name: "prediction_duration_seconds"}),
		LowVisibilityFlags: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "hydrosense", Name: "low_visibility_flags_total"}),
		HistoryWrites:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "hydrosense", Name: "history_writes_total"}, []string{"outcome"}),
	}
}
