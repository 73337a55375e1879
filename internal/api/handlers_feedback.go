// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/menuscore/internal/logging"
	"github.com/tomtom215/menuscore/internal/models"
)

// Feedback handles POST /api/v1/feedback.
//
// The rating is stored before it is announced. A failed announcement is
// logged and the request still succeeds.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	fb := &models.Feedback{
		UserID:  strings.TrimSpace(req.UserID),
		ItemID:  strings.TrimSpace(req.ItemID),
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.store.RecordFeedback(r.Context(), fb); err != nil {
		respondDomainError(w, r, err)
		return
	}

	if h.notifier != nil {
		if err := h.notifier.PublishFeedback(r.Context(), fb); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).
				Str("feedback_id", fb.ID).
				Str("item_id", sanitizeLogValue(fb.ItemID)).
				Msg("Failed to publish feedback event")
		}
	}

	respondSuccess(w, r, http.StatusCreated, models.FeedbackResponse{
		ID:        fb.ID,
		CreatedAt: fb.CreatedAt,
	}, start)
}

// UserFeedback handles GET /api/v1/feedback/{userID}, newest first.
func (h *Handler) UserFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	userID := chi.URLParam(r, "userID")
	limit := getIntParam(r, "limit", feedbackListLimit)
	if limit <= 0 || limit > 500 {
		limit = feedbackListLimit
	}

	list, err := h.store.ListFeedback(r.Context(), userID, limit)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"user_id":  userID,
		"feedback": list,
		"count":    len(list),
	}, start)
}
