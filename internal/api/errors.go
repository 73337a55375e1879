// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/menuscore/internal/database"
	"github.com/tomtom215/menuscore/internal/pricing"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// errorResponse is the status, code and client message an error maps to.
type errorResponse struct {
	status  int
	code    string
	message string
	details map[string]interface{}
}

// classifyError maps domain and store errors onto the API error codes.
// Unknown errors are reported as internal without leaking their text.
func classifyError(err error) errorResponse {
	var (
		missing  *recommend.MissingFieldError
		scoring  *recommend.ScoringError
		mismatch *pricing.SchemaMismatchError
		price    *pricing.InvalidPriceError
	)

	switch {
	case errors.Is(err, recommend.ErrEmptyBatch):
		return errorResponse{http.StatusNotFound, ErrCodeNoMenuItems, "The menu has no items", nil}
	case errors.Is(err, recommend.ErrMissingUserID):
		return errorResponse{http.StatusBadRequest, ErrCodeValidation, "user_id is required", nil}
	case errors.As(err, &missing), errors.As(err, &scoring):
		return errorResponse{http.StatusUnprocessableEntity, ErrCodeScoring, err.Error(), nil}
	case errors.Is(err, pricing.ErrUntrainedModel):
		return errorResponse{http.StatusServiceUnavailable, ErrCodeModelNotReady, "Pricing model has not been trained", nil}
	case errors.Is(err, pricing.ErrTrainingInProgress):
		return errorResponse{http.StatusConflict, ErrCodeTrainingInProgress, "A training run is already in progress", nil}
	case errors.As(err, &mismatch):
		return errorResponse{http.StatusBadRequest, ErrCodeValidation, mismatch.Error(), mismatchDetails(mismatch)}
	case errors.As(err, &price):
		return errorResponse{http.StatusBadRequest, ErrCodeValidation, price.Error(), nil}
	case errors.Is(err, database.ErrNotFound):
		return errorResponse{http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil}
	case errors.Is(err, database.ErrUnavailable):
		return errorResponse{http.StatusServiceUnavailable, ErrCodeUnavailable, "Storage is temporarily unavailable", nil}
	case errors.Is(err, context.DeadlineExceeded):
		return errorResponse{http.StatusServiceUnavailable, ErrCodeUnavailable, "Request timed out", nil}
	default:
		return errorResponse{http.StatusInternalServerError, ErrCodeInternal, "Internal server error", nil}
	}
}

func mismatchDetails(e *pricing.SchemaMismatchError) map[string]interface{} {
	details := make(map[string]interface{}, 3)
	if len(e.Missing) > 0 {
		details["missing"] = e.Missing
	}
	if len(e.Extra) > 0 {
		details["unexpected"] = e.Extra
	}
	if len(e.Invalid) > 0 {
		details["invalid"] = e.Invalid
	}
	return details
}

// respondDomainError classifies err and writes the matching error envelope.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	resp := classifyError(err)
	respondErrorDetails(w, r, resp.status, resp.code, resp.message, resp.details, err)
}
