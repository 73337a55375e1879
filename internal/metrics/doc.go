// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package metrics provides Prometheus metrics for Menuscore.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Database:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table}

Recommendations:
  - recommend_requests_total{status}
  - recommend_duration_seconds
  - recommend_results

Pricing:
  - pricing_predictions_total
  - pricing_prediction_errors_total{reason}
  - pricing_multiplier
  - model_training_duration_seconds, model_training_errors_total
  - model_last_train_success_timestamp, model_version
  - model_training_samples, model_training_r2

Resilience and events:
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
  - feedback_events_published_total
  - feedback_events_processed_total{result}

# Usage

	start := time.Now()
	items, err := svc.Recommend(ctx, userID)
	metrics.RecordRecommendation("success", time.Since(start), len(items))

Example PromQL:

	# p95 scoring latency
	histogram_quantile(0.95, rate(recommend_duration_seconds_bucket[5m]))

	# seconds since the model was last retrained
	time() - model_last_train_success_timestamp
*/
package metrics
