// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package config

import (
	"fmt"
	"math"
	"time"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateLogging,
		c.validateSecurity,
		c.validateRecommend,
		c.validatePricing,
		c.validateEvents,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.Timezone != "" {
		if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
			return fmt.Errorf("SERVER_TIMEZONE %q is not a valid IANA zone: %w", c.Server.Timezone, err)
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
	}
	if c.Database.SeedDemoCatalog && c.Database.SeedItems < 1 {
		return fmt.Errorf("SEED_ITEMS must be positive when seeding, got %d", c.Database.SeedItems)
	}
	b := c.Database.Breaker
	if b.Enabled {
		if b.FailureThreshold == 0 {
			return fmt.Errorf("DB_BREAKER_FAILURE_THRESHOLD must be positive")
		}
		if b.Timeout <= 0 {
			return fmt.Errorf("DB_BREAKER_TIMEOUT must be positive, got %v", b.Timeout)
		}
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	weights := map[string]float64{
		"RECOMMEND_SIMILARITY_WEIGHT": r.SimilarityWeight,
		"RECOMMEND_RATING_WEIGHT":     r.RatingWeight,
		"RECOMMEND_FREQUENCY_WEIGHT":  r.FrequencyWeight,
		"RECOMMEND_PEAK_HOUR_BONUS":   r.PeakHourBonus,
		"RECOMMEND_SPECIAL_BONUS":     r.SpecialBonus,
		"RECOMMEND_SEASONAL_BONUS":    r.SeasonalBonus,
		"RECOMMEND_MIN_SCORE":         r.MinScore,
	}
	for name, v := range weights {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a non-negative number, got %f", name, v)
		}
	}
	if r.FrequencyCap <= 0 {
		return fmt.Errorf("RECOMMEND_FREQUENCY_CAP must be positive, got %f", r.FrequencyCap)
	}
	if r.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be positive, got %d", r.MaxResults)
	}
	if r.MaxFeatures < 1 {
		return fmt.Errorf("RECOMMEND_MAX_FEATURES must be positive, got %d", r.MaxFeatures)
	}
	if r.ResponseLimit < 1 || r.ResponseLimit > r.MaxResults {
		return fmt.Errorf("RECOMMEND_RESPONSE_LIMIT must be between 1 and %d, got %d", r.MaxResults, r.ResponseLimit)
	}
	return nil
}

var validPricingSources = map[string]bool{
	"synthetic": true,
	"database":  true,
}

func (c *Config) validatePricing() error {
	p := c.Pricing
	if p.MinMultiplier <= 0 || p.MaxMultiplier < p.MinMultiplier {
		return fmt.Errorf("pricing band must satisfy 0 < min <= max, got [%f, %f]", p.MinMultiplier, p.MaxMultiplier)
	}
	if p.NumTrees < 1 {
		return fmt.Errorf("PRICING_NUM_TREES must be positive, got %d", p.NumTrees)
	}
	if p.MaxDepth < 1 {
		return fmt.Errorf("PRICING_MAX_DEPTH must be positive, got %d", p.MaxDepth)
	}
	if p.MinSamplesSplit < 2 {
		return fmt.Errorf("PRICING_MIN_SAMPLES_SPLIT must be at least 2, got %d", p.MinSamplesSplit)
	}
	if p.MinSamplesLeaf < 1 {
		return fmt.Errorf("PRICING_MIN_SAMPLES_LEAF must be positive, got %d", p.MinSamplesLeaf)
	}
	if p.TrainInterval < 0 {
		return fmt.Errorf("PRICING_TRAIN_INTERVAL must be non-negative, got %v", p.TrainInterval)
	}
	if p.TrainTimeout <= 0 {
		return fmt.Errorf("PRICING_TRAIN_TIMEOUT must be positive, got %v", p.TrainTimeout)
	}
	if !validPricingSources[p.Source] {
		return fmt.Errorf("PRICING_SOURCE must be one of: synthetic, database")
	}
	if p.Source == "synthetic" && p.SyntheticSamples < 1 {
		return fmt.Errorf("PRICING_SYNTHETIC_SAMPLES must be positive, got %d", p.SyntheticSamples)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.FeedbackTopic == "" {
		return fmt.Errorf("EVENTS_FEEDBACK_TOPIC is required when events are enabled")
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must be non-negative, got %d", c.Events.BufferSize)
	}
	return nil
}
