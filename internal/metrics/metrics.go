// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"status"}, // "success", "empty", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent scoring one recommendation batch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of items returned per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 5, 7, 10},
		},
	)

	// Pricing Metrics
	PricingPredictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pricing_predictions_total",
			Help: "Total number of successful price predictions",
		},
	)

	PricingPredictionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_prediction_errors_total",
			Help: "Total number of failed price predictions",
		},
		[]string{"reason"}, // "untrained", "schema", "invalid_price", "other"
	)

	PricingMultiplier = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricing_multiplier",
			Help:    "Distribution of served price multipliers",
			Buckets: []float64{0.8, 0.85, 0.9, 0.95, 1, 1.05, 1.1, 1.15, 1.2, 1.25, 1.3},
		},
	)

	// Model Training Metrics
	ModelTrainingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_training_duration_seconds",
			Help:    "Duration of pricing model training runs",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	ModelTrainingErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "model_training_errors_total",
			Help: "Total number of failed training runs",
		},
	)

	ModelLastTrainSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_last_train_success_timestamp",
			Help: "Unix timestamp of the last successful training run",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_version",
			Help: "Version of the pricing model currently served",
		},
	)

	ModelTrainingSamples = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_training_samples",
			Help: "Number of samples the served model was trained on",
		},
	)

	ModelTrainingScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_training_r2",
			Help: "In-sample R² of the served model",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Feedback Event Metrics
	FeedbackEventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_events_published_total",
			Help: "Total number of feedback events published",
		},
	)

	FeedbackEventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_events_processed_total",
			Help: "Total number of feedback events consumed",
		},
		[]string{"result"}, // "ack", "nack", "invalid"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation request.
// status is "success", "empty" or "error".
func RecordRecommendation(status string, duration time.Duration, results int) {
	RecommendRequests.WithLabelValues(status).Inc()
	RecommendDuration.Observe(duration.Seconds())
	if status == "success" {
		RecommendResults.Observe(float64(results))
	}
}

// RecordPrediction records a served multiplier.
func RecordPrediction(multiplier float64) {
	PricingPredictions.Inc()
	PricingMultiplier.Observe(multiplier)
}

// RecordPredictionError records a failed prediction.
func RecordPredictionError(reason string) {
	PricingPredictionErrors.WithLabelValues(reason).Inc()
}

// RecordTraining records one training run. On success the model gauges are
// updated to describe the newly served snapshot.
func RecordTraining(duration time.Duration, version int64, samples int, r2 float64, err error) {
	ModelTrainingDuration.Observe(duration.Seconds())
	if err != nil {
		ModelTrainingErrors.Inc()
		return
	}
	ModelLastTrainSuccess.Set(float64(time.Now().Unix()))
	ModelVersion.Set(float64(version))
	ModelTrainingSamples.Set(float64(samples))
	ModelTrainingScore.Set(r2)
}

// RecordBreakerRequest records a call outcome through a named circuit breaker.
func RecordBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition records a state change and updates the state gauge.
// state values follow gobreaker: 0 closed, 1 half-open, 2 open.
func RecordBreakerTransition(name, from, to string, state int) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordFeedbackPublished counts a published feedback event.
func RecordFeedbackPublished() {
	FeedbackEventsPublished.Inc()
}

// RecordFeedbackProcessed counts a consumed feedback event by outcome.
func RecordFeedbackProcessed(result string) {
	FeedbackEventsProcessed.WithLabelValues(result).Inc()
}
