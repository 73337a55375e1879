// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Pricing   PricingConfig   `koanf:"pricing"`
	Events    EventsConfig    `koanf:"events"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is development, staging or production.
	// Default: development
	Environment string `koanf:"environment"`

	// Timezone is the IANA zone of the restaurant. Peak hours are matched
	// against the local hour in this zone.
	// Default: UTC
	Timezone string `koanf:"timezone"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the DuckDB file; ":memory:" keeps everything in memory.
	// Default: /data/menuscore.duckdb
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB worker count (0 = NumCPU).
	Threads int `koanf:"threads"`

	// SeedDemoCatalog inserts a generated menu when the catalog is empty.
	// Default: false
	SeedDemoCatalog bool `koanf:"seed_demo_catalog"`

	// SeedItems is the number of generated menu items.
	// Default: 24
	SeedItems int `koanf:"seed_items"`

	// Breaker configures the circuit breaker in front of the store.
	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for store access.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests allowed through while half-open.
	// Default: 3
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	// Default: 1m
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open.
	// Default: 30s
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the consecutive failure count that trips the breaker.
	// Default: 5
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// RecommendConfig holds the business tuning of the recommendation scorer.
type RecommendConfig struct {
	SimilarityWeight float64 `koanf:"similarity_weight"`
	RatingWeight     float64 `koanf:"rating_weight"`
	FrequencyWeight  float64 `koanf:"frequency_weight"`
	FrequencyCap     float64 `koanf:"frequency_cap"`

	PeakHourBonus float64 `koanf:"peak_hour_bonus"`
	SpecialBonus  float64 `koanf:"special_bonus"`
	SeasonalBonus float64 `koanf:"seasonal_bonus"`

	MinScore    float64 `koanf:"min_score"`
	MaxResults  int     `koanf:"max_results"`
	MaxFeatures int     `koanf:"max_features"`

	// ResponseLimit is the number of items returned by the API when the
	// request does not ask for a specific count.
	// Default: 5
	ResponseLimit int `koanf:"response_limit"`
}

// PricingConfig holds the pricing model, its safety band and its training schedule.
type PricingConfig struct {
	MinMultiplier float64 `koanf:"min_multiplier"`
	MaxMultiplier float64 `koanf:"max_multiplier"`

	NumTrees        int   `koanf:"num_trees"`
	MaxDepth        int   `koanf:"max_depth"`
	MinSamplesSplit int   `koanf:"min_samples_split"`
	MinSamplesLeaf  int   `koanf:"min_samples_leaf"`
	MaxFeatures     int   `koanf:"max_features"`
	Seed            int64 `koanf:"seed"`
	Workers         int   `koanf:"workers"`

	// TrainOnStartup trains the model as soon as the model layer starts.
	// Default: true
	TrainOnStartup bool `koanf:"train_on_startup"`

	// TrainInterval retrains periodically. Zero disables periodic retraining.
	// Default: 0
	TrainInterval time.Duration `koanf:"train_interval"`

	// TrainTimeout bounds one training run.
	// Default: 30m
	TrainTimeout time.Duration `koanf:"train_timeout"`

	// Source is synthetic or database.
	// Default: synthetic
	Source string `koanf:"source"`

	SyntheticSamples int   `koanf:"synthetic_samples"`
	SyntheticSeed    int64 `koanf:"synthetic_seed"`
}

// EventsConfig holds the in-process feedback event bus settings.
type EventsConfig struct {
	// Enabled publishes feedback events and runs the rating updater.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// FeedbackTopic is the topic feedback events are published on.
	// Default: feedback.recorded
	FeedbackTopic string `koanf:"feedback_topic"`

	// BufferSize is the per-subscriber channel buffer.
	// Default: 256
	BufferSize int64 `koanf:"buffer_size"`
}

// Location returns the configured time zone, falling back to UTC.
func (s *ServerConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load loads configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
