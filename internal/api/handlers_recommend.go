// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/menuscore/internal/metrics"
	"github.com/tomtom215/menuscore/internal/models"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// Recommend handles POST /api/v1/recommend.
//
// Request body: {"user_id": "u1", "limit": 5}
//
// limit defaults to the configured response limit and is capped at the
// scorer's maximum result count. An empty catalog yields 404 NO_MENU_ITEMS.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.RecommendRequest
	if !decodeBody(w, r, &req) {
		return
	}

	scored, err := h.recommender.Recommend(r.Context(), req.UserID)
	if err != nil {
		metrics.RecordRecommendation("error", time.Since(start), 0)
		respondDomainError(w, r, err)
		return
	}

	if limit := h.limitFor(req.Limit); len(scored) > limit {
		scored = scored[:limit]
	}

	status := "success"
	if len(scored) == 0 {
		status = "empty"
	}
	metrics.RecordRecommendation(status, time.Since(start), len(scored))

	respondSuccess(w, r, http.StatusOK, models.RecommendResponse{
		UserID:          req.UserID,
		Recommendations: toRecommendations(scored),
		Count:           len(scored),
	}, start)
}

func toRecommendations(scored []recommend.ScoredItem) []models.Recommendation {
	out := make([]models.Recommendation, len(scored))
	for i := range scored {
		out[i] = models.Recommendation{
			ItemID:          scored[i].Item.ID,
			Name:            scored[i].Item.Name,
			Category:        scored[i].Item.Category,
			Score:           scored[i].Score,
			SimilarityScore: scored[i].SimilarityScore,
			Features:        scored[i].Features,
		}
	}
	return out
}
