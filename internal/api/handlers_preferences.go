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

	"github.com/tomtom215/menuscore/internal/models"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// Preferences handles GET and PUT /api/v1/preferences/{userID}.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, http.MethodPut) {
		return
	}

	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" || len(userID) > 128 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "userID must be 1-128 characters", nil)
		return
	}

	if r.Method == http.MethodGet {
		h.getPreferences(w, r, userID)
		return
	}
	h.putPreferences(w, r, userID)
}

// getPreferences returns 404 when the user has never stored preferences,
// even though recommendations fall back to an empty profile.
func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request, userID string) {
	start := time.Now()
	profile, err := h.store.LookupProfile(r.Context(), userID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, profile, start)
}

func (h *Handler) putPreferences(w http.ResponseWriter, r *http.Request, userID string) {
	start := time.Now()

	var req models.PreferencesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile := recommend.UserProfile{
		UserID:              userID,
		FavoriteCuisines:    nonNilStrings(req.FavoriteCuisines),
		DietaryRestrictions: nonNilStrings(req.DietaryRestrictions),
		Allergies:           nonNilStrings(req.Allergies),
		MealTiming:          nonNilStrings(req.MealTiming),
		SpicePreference:     req.SpicePreference,
		PriceRange:          recommend.PriceCategory(req.PriceRange),
		SpecialOccasions:    req.SpecialOccasions,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := h.store.UpsertProfile(r.Context(), profile); err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, profile, start)
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
