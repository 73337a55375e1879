// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package validation validates API request structs with go-playground/validator.

A single validator is built lazily with WithRequiredStructEnabled and reused
for every request, so struct metadata is cached. Field names in messages are
taken from json tags.

Custom tags:
  - price_category: low, medium or high
  - notblank: a string with at least one non-space character

Failures are returned as *RequestValidationError, which converts into the
API's VALIDATION_ERROR payload:

	type FeedbackRequest struct {
	    UserID string `json:"user_id" validate:"required,notblank,max=128"`
	    Rating int    `json:"rating" validate:"min=1,max=5"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}
*/
package validation
