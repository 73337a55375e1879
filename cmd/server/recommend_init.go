// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"fmt"
	"time"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/database"
	"github.com/tomtom215/menuscore/internal/logging"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// initRecommend builds the recommendation service. Catalog and profile reads
// go through the store circuit breaker; peak hours follow the restaurant's
// configured time zone.
func initRecommend(cfg *config.Config, store database.ReadStore) (*recommend.Service, error) {
	logger := logging.WithComponent("recommend")

	scorer, err := recommend.NewScorer(cfg.Recommend.ScorerConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create scorer: %w", err)
	}

	reads := database.NewBreakerStore(store, cfg.Database.Breaker, logger)
	loc := cfg.Server.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	logger.Info().
		Float64("min_score", cfg.Recommend.MinScore).
		Int("max_results", cfg.Recommend.MaxResults).
		Str("timezone", loc.String()).
		Bool("breaker_enabled", cfg.Database.Breaker.Enabled).
		Msg("Recommendation service initialized")

	return recommend.NewService(reads, reads, scorer, logger, recommend.WithClock(clock)), nil
}
