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

// Menu handles GET /api/v1/menu.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	items, err := h.store.ListMenuItems(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	category := strings.ToLower(r.URL.Query().Get("category"))
	if category != "" {
		filtered := make([]recommend.MenuItem, 0, len(items))
		for i := range items {
			if strings.ToLower(items[i].Category) == category {
				filtered = append(filtered, items[i])
			}
		}
		items = filtered
	}

	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	}, start)
}

// MenuItem handles PUT /api/v1/menu/{itemID}. The whole item is replaced.
func (h *Handler) MenuItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !requireMethod(w, r, http.MethodPut) {
		return
	}

	itemID := strings.TrimSpace(chi.URLParam(r, "itemID"))
	if itemID == "" || len(itemID) > 128 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "itemID must be 1-128 characters", nil)
		return
	}

	var req models.MenuItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item := recommend.MenuItem{
		ID:              itemID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Category:        req.Category,
		IsVegetarian:    req.IsVegetarian,
		IsVegan:         req.IsVegan,
		IsGlutenFree:    req.IsGlutenFree,
		IsSpicy:         req.IsSpicy,
		IsSpecial:       req.IsSpecial,
		IsSeasonal:      req.IsSeasonal,
		AverageRating:   req.AverageRating,
		OrderFrequency:  req.OrderFrequency,
		PreparationTime: req.PreparationTime,
		PriceCategory:   recommend.PriceCategory(req.PriceCategory),
		BasePrice:       req.BasePrice,
		PeakHours:       req.PeakHours,
	}
	if err := h.store.UpsertMenuItem(r.Context(), item); err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, item, start)
}
