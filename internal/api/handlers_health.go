// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/menuscore/internal/models"
)

// HealthLive reports that the process is up. It never touches dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "alive",
		Data: models.HealthResponse{
			Status:  "alive",
			Version: h.version,
			Uptime:  time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady reports whether the database answers and a pricing model is
// being served. Either failing yields 503.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	checks := make(map[string]string, 2)

	ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
	defer cancel()

	dbReady := false
	switch {
	case h.store == nil:
		checks["database"] = "not configured"
	default:
		if err := h.store.Ping(ctx); err != nil {
			checks["database"] = "unreachable"
		} else {
			dbReady = true
			checks["database"] = "ok"
		}
	}

	modelReady := h.pricing != nil && h.pricing.State() != nil
	if modelReady {
		checks["pricing_model"] = "ok"
	} else {
		checks["pricing_model"] = "not trained"
	}

	statusCode := http.StatusOK
	status := "ready"
	if !dbReady || !modelReady {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: models.HealthResponse{
			Status:        status,
			Version:       h.version,
			Uptime:        time.Since(h.startTime).Seconds(),
			DatabaseReady: dbReady,
			ModelReady:    modelReady,
			Checks:        checks,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
