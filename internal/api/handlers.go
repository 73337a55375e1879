// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"context"
	"time"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/models"
	"github.com/tomtom215/menuscore/internal/pricing"
	"github.com/tomtom215/menuscore/internal/recommend"
)

const (
	defaultResponseLimit = 5
	defaultMaxResults    = 10
	feedbackListLimit    = 50
	readyCheckTimeout    = 2 * time.Second
)

// Store is the persistence the handlers read and write.
type Store interface {
	Ping(ctx context.Context) error
	ListMenuItems(ctx context.Context) ([]recommend.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (recommend.MenuItem, error)
	UpsertMenuItem(ctx context.Context, item recommend.MenuItem) error
	LookupProfile(ctx context.Context, userID string) (recommend.UserProfile, error)
	UpsertProfile(ctx context.Context, profile recommend.UserProfile) error
	RecordFeedback(ctx context.Context, fb *models.Feedback) error
	ListFeedback(ctx context.Context, userID string, limit int) ([]models.Feedback, error)
}

// Recommender ranks the catalog for a user.
type Recommender interface {
	Recommend(ctx context.Context, userID string) ([]recommend.ScoredItem, error)
}

// PricingModel quotes prices from the currently served model.
type PricingModel interface {
	PredictPrice(basePrice float64, fv pricing.FeatureVector) (pricing.Quote, error)
	State() *pricing.TrainedState
	Bounds() (minMultiplier, maxMultiplier float64)
}

// FeedbackNotifier is told about every stored rating.
type FeedbackNotifier interface {
	PublishFeedback(ctx context.Context, fb *models.Feedback) error
}

// Handler serves the HTTP endpoints.
type Handler struct {
	store       Store
	recommender Recommender
	pricing     PricingModel
	notifier    FeedbackNotifier

	responseLimit int
	maxResults    int
	version       string
	startTime     time.Time
}

// NewHandler creates the HTTP handlers. notifier may be nil, in which case
// stored feedback is not announced.
func NewHandler(cfg *config.Config, store Store, recommender Recommender, model PricingModel, notifier FeedbackNotifier) *Handler {
	h := &Handler{
		store:         store,
		recommender:   recommender,
		pricing:       model,
		notifier:      notifier,
		responseLimit: defaultResponseLimit,
		maxResults:    defaultMaxResults,
		startTime:     time.Now(),
	}
	if cfg != nil {
		if cfg.Recommend.ResponseLimit > 0 {
			h.responseLimit = cfg.Recommend.ResponseLimit
		}
		if cfg.Recommend.MaxResults > 0 {
			h.maxResults = cfg.Recommend.MaxResults
		}
	}
	return h
}

// SetVersion sets the build version reported by the health probes.
func (h *Handler) SetVersion(version string) {
	h.version = version
}

// limitFor returns how many recommendations to return for a requested limit.
func (h *Handler) limitFor(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = h.responseLimit
	}
	if limit > h.maxResults {
		limit = h.maxResults
	}
	return limit
}
