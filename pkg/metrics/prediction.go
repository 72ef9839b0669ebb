package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of a single Decision Engine evaluation, classifier call included
	PredictionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "prediction_evaluate_latency_seconds",
		Help:    "Latency of hit prediction evaluations",
		Buckets: prometheus.DefBuckets,
	})

	// Verdicts served, by publisher tier and bucket
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prediction_verdicts_total",
		Help: "Total number of hit predictions by publisher tier and bucket",
	}, []string{"publisher_tier", "bucket"})

	// Failed evaluations, by error kind
	PredictionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prediction_errors_total",
		Help: "Total number of failed hit predictions by error kind",
	}, []string{"kind"})
)

func Init() {
	prometheus.MustRegister(
		PredictionLatency,
		PredictionsTotal,
		PredictionErrors,
	)
}
