// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package models

import (
	"time"
)

// APIResponse is the envelope of every JSON response.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...], "count": 5},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 4}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"},
//	  "error": {"code": "MODEL_NOT_READY", "message": "pricing model has not been trained"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the error half of the envelope.
//
// Error codes:
//   - VALIDATION_ERROR: bad request body or feature vector (400)
//   - NOT_FOUND: unknown resource (404)
//   - NO_MENU_ITEMS: the catalog is empty (404)
//   - SCORING_ERROR: a menu item could not be scored (422)
//   - MODEL_NOT_READY: the pricing model is not trained yet (503)
//   - TRAINING_IN_PROGRESS: a retrain is already running (409)
//   - SERVICE_UNAVAILABLE: the store circuit breaker is open (503)
//   - DATABASE_ERROR, INTERNAL_ERROR (500)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version,omitempty"`
	Uptime        float64           `json:"uptime_seconds"`
	DatabaseReady bool              `json:"database_ready"`
	ModelReady    bool              `json:"model_ready"`
	Checks        map[string]string `json:"checks,omitempty"`
}

// RecommendResponse is the payload of POST /recommend.
type RecommendResponse struct {
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
}

// Recommendation is one ranked menu item.
type Recommendation struct {
	ItemID          string             `json:"item_id"`
	Name            string             `json:"name"`
	Category        string             `json:"category,omitempty"`
	Score           float64            `json:"score"`
	SimilarityScore float64            `json:"similarity_score"`
	Features        map[string]float64 `json:"features,omitempty"`
}

// FeedbackResponse is returned after feedback is stored.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// PricingStatus describes the pricing model currently served.
type PricingStatus struct {
	Trained       bool      `json:"trained"`
	Version       int64     `json:"version,omitempty"`
	TrainedAt     time.Time `json:"trained_at,omitempty"`
	SampleCount   int       `json:"sample_count,omitempty"`
	TrainingScore float64   `json:"training_score,omitempty"`
	MinMultiplier float64   `json:"min_multiplier"`
	MaxMultiplier float64   `json:"max_multiplier"`
	Numeric       []string  `json:"numeric_features"`
	Categorical   []string  `json:"categorical_features"`
}
