// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/database"
	"github.com/tomtom215/menuscore/internal/eventprocessor"
	"github.com/tomtom215/menuscore/internal/middleware"
	"github.com/tomtom215/menuscore/internal/models"
	"github.com/tomtom215/menuscore/internal/pricing"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// =====================================================
// ChiMiddleware Configuration Tests
// =====================================================

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddlewareConfigFrom(t *testing.T) {
	t.Parallel()

	cfg := ChiMiddlewareConfigFrom(&config.SecurityConfig{
		RateLimitReqs:     7,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://menu.example.com"},
	})
	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != 30*time.Second || !cfg.RateLimitDisabled {
		t.Errorf("rate limit config = %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://menu.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}

	if got := ChiMiddlewareConfigFrom(nil); got.RateLimitRequests != 100 {
		t.Errorf("nil security config should keep defaults, got %+v", got)
	}
}

// =====================================================
// Router Tests
// =====================================================

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	h := NewHandler(testConfig(), newFakeStore(), &fakeRecommender{}, &fakePricing{}, nil)
	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})
	srv := NewRouter(h, mw).SetupChi()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/menu", nil)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first requests = %v, want 200s", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", codes[2])
	}

	// Health probes are outside the limited group.
	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("health after limit = %d, want 200", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	h := NewHandler(testConfig(), newFakeStore(), &fakeRecommender{}, &fakePricing{}, nil)
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://menu.example.com"}
	cfg.RateLimitDisabled = true
	srv := NewRouter(h, NewChiMiddleware(cfg)).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", nil)
	req.Header.Set("Origin", "https://menu.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://menu.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_RequestIDAndMetrics(t *testing.T) {
	t.Parallel()

	srv := testServer(NewHandler(testConfig(), newFakeStore(), &fakeRecommender{}, &fakePricing{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if got := rec.Header().Get(middleware.RequestIDHeader); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", got)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("/metrics does not expose api_requests_total")
	}
}

func TestRouter_UnknownMethod(t *testing.T) {
	t.Parallel()

	srv := testServer(NewHandler(testConfig(), newFakeStore(), &fakeRecommender{}, &fakePricing{}, nil))
	rec, _ := doRequest(t, srv, http.MethodDelete, "/api/v1/menu", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

// =====================================================
// End-to-end with DuckDB
// =====================================================

func TestRouter_EndToEnd(t *testing.T) {
	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB", Threads: 2}, zerolog.Nop())
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for _, item := range []recommend.MenuItem{
		{ID: "pizza", Name: "Veggie Pizza", Description: "tomato basil mozzarella", Category: "Italian", IsVegetarian: true, AverageRating: recommend.Float(4.5), PriceCategory: recommend.PriceMedium, BasePrice: 20},
		{ID: "curry", Name: "Green Curry", Description: "coconut chili", Category: "Thai", IsSpicy: true, AverageRating: recommend.Float(4.0), PriceCategory: recommend.PriceMedium, BasePrice: 15},
		{ID: "steak", Name: "Ribeye Steak", Description: "grilled beef", Category: "American", AverageRating: recommend.Float(4.2), PriceCategory: recommend.PriceHigh, BasePrice: 38},
	} {
		if err := db.UpsertMenuItem(ctx, item); err != nil {
			t.Fatalf("UpsertMenuItem() error = %v", err)
		}
	}

	scorer, err := recommend.NewScorer(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	reads := database.NewBreakerStore(db, config.BreakerConfig{Enabled: true}, zerolog.Nop())
	service := recommend.NewService(reads, reads, scorer, zerolog.Nop())

	pcfg := pricing.DefaultConfig()
	pcfg.Forest.NumTrees = 8
	pcfg.Forest.MaxDepth = 6
	pcfg.Forest.Workers = 2
	predictor, err := pricing.NewPredictor(pcfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}
	gen := pricing.NewGenerator(pcfg)
	gen.Samples = 300
	if _, err := predictor.Train(ctx, gen.Generate()); err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	notifier := eventprocessor.NewInlineNotifier(eventprocessor.NewRatingUpdater(db, zerolog.Nop()))
	srv := testServer(NewHandler(testConfig(), db, service, predictor, notifier))

	rec, _ := doRequest(t, srv, http.MethodPut, "/api/v1/preferences/u1", map[string]interface{}{
		"favorite_cuisines":    []string{"Italian"},
		"dietary_restrictions": []string{"vegetarian"},
		"price_range":          "medium",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put preferences = %d, body %s", rec.Code, rec.Body.String())
	}

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommend", map[string]interface{}{"user_id": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("recommend = %d, body %s", rec.Code, rec.Body.String())
	}
	var recs models.RecommendResponse
	if err := json.Unmarshal(env.Data, &recs); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	if recs.Count == 0 || recs.Recommendations[0].ItemID != "pizza" {
		t.Fatalf("recommendations = %+v, want pizza first", recs.Recommendations)
	}

	for _, rating := range []int{1, 2} {
		rec, _ = doRequest(t, srv, http.MethodPost, "/api/v1/feedback",
			map[string]interface{}{"user_id": "u1", "item_id": "curry", "rating": rating})
		if rec.Code != http.StatusCreated {
			t.Fatalf("feedback = %d, body %s", rec.Code, rec.Body.String())
		}
	}
	curry, err := db.GetMenuItem(ctx, "curry")
	if err != nil {
		t.Fatalf("GetMenuItem() error = %v", err)
	}
	if curry.AverageRating == nil || *curry.AverageRating != 1.5 {
		t.Errorf("curry rating = %v, want 1.5 after inline refresh", curry.AverageRating)
	}

	rec, env = doRequest(t, srv, http.MethodPost, "/api/v1/pricing/quote", map[string]interface{}{
		"item_id":  "steak",
		"features": quoteFeatures(),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("quote = %d, body %s", rec.Code, rec.Body.String())
	}
	var quote pricing.Quote
	if err := json.Unmarshal(env.Data, &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.BasePrice != 38 {
		t.Errorf("base price = %v, want 38", quote.BasePrice)
	}
	if quote.Price < 38*0.8-0.01 || quote.Price > 38*1.3+0.01 {
		t.Errorf("price %v outside the safety band", quote.Price)
	}
	if math.Abs(quote.Price*100-math.Round(quote.Price*100)) > 1e-6 {
		t.Errorf("price %v is not rounded to cents", quote.Price)
	}

	rec, _ = doRequest(t, srv, http.MethodGet, "/api/v1/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("ready = %d, want 200", rec.Code)
	}
}
