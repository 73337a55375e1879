// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/menuscore/internal/metrics"
	"github.com/tomtom215/menuscore/internal/models"
	"github.com/tomtom215/menuscore/internal/pricing"
)

// Quote handles POST /api/v1/pricing/quote.
//
// Request body:
//
//	{"base_price": 20.0, "features": {"hour": 19, "weather_condition": "rainy", ...}}
//	{"item_id": "item-007", "features": {...}}
//
// Without base_price the menu item's stored base price is used.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	basePrice, ok := h.resolveBasePrice(w, r, &req)
	if !ok {
		return
	}

	quote, err := h.pricing.PredictPrice(basePrice, pricing.FeatureVector(req.Features))
	if err != nil {
		metrics.RecordPredictionError(predictionErrorReason(err))
		respondDomainError(w, r, err)
		return
	}
	metrics.RecordPrediction(quote.Multiplier)

	respondSuccess(w, r, http.StatusOK, quote, start)
}

func (h *Handler) resolveBasePrice(w http.ResponseWriter, r *http.Request, req *models.QuoteRequest) (float64, bool) {
	if req.BasePrice != nil {
		return *req.BasePrice, true
	}
	if req.ItemID == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "base_price or item_id is required", nil)
		return 0, false
	}

	item, err := h.store.GetMenuItem(r.Context(), req.ItemID)
	if err != nil {
		respondDomainError(w, r, err)
		return 0, false
	}
	if item.BasePrice <= 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "menu item has no base price", nil)
		return 0, false
	}
	return item.BasePrice, true
}

func predictionErrorReason(err error) string {
	var (
		mismatch *pricing.SchemaMismatchError
		price    *pricing.InvalidPriceError
	)
	switch {
	case errors.Is(err, pricing.ErrUntrainedModel):
		return "untrained"
	case errors.As(err, &mismatch):
		return "schema_mismatch"
	case errors.As(err, &price):
		return "invalid_price"
	default:
		return "other"
	}
}

// PricingStatus handles GET /api/v1/pricing/status.
func (h *Handler) PricingStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	lo, hi := h.pricing.Bounds()
	schema := pricing.DefaultSchema()
	status := models.PricingStatus{
		MinMultiplier: lo,
		MaxMultiplier: hi,
	}
	if state := h.pricing.State(); state != nil {
		schema = state.Schema
		status.Trained = true
		status.Version = state.Version
		status.TrainedAt = state.TrainedAt
		status.SampleCount = state.SampleCount
		status.TrainingScore = state.TrainingScore
	}
	status.Numeric = schema.Numeric
	status.Categorical = schema.Categorical

	respondSuccess(w, r, http.StatusOK, status, start)
}
