// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/menuscore/config.yaml",
	"/etc/menuscore/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before file and env.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
			Timezone:        "UTC",
		},
		Database: DatabaseConfig{
			Path:            "/data/menuscore.duckdb",
			MaxMemory:       "1GB",
			Threads:         0,
			SeedDemoCatalog: false,
			SeedItems:       24,
			Breaker: BreakerConfig{
				Enabled:          true,
				MaxRequests:      3,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		Recommend: RecommendConfig{
			SimilarityWeight: 0.6,
			RatingWeight:     0.2,
			FrequencyWeight:  0.1,
			FrequencyCap:     100,
			PeakHourBonus:    1.2,
			SpecialBonus:     1.1,
			SeasonalBonus:    1.15,
			MinScore:         0.1,
			MaxResults:       10,
			MaxFeatures:      5000,
			ResponseLimit:    5,
		},
		Pricing: PricingConfig{
			MinMultiplier:    0.8,
			MaxMultiplier:    1.3,
			NumTrees:         100,
			MaxDepth:         10,
			MinSamplesSplit:  5,
			MinSamplesLeaf:   2,
			MaxFeatures:      0,
			Seed:             42,
			Workers:          runtime.NumCPU(),
			TrainOnStartup:   true,
			TrainInterval:    0,
			TrainTimeout:     30 * time.Minute,
			Source:           "synthetic",
			SyntheticSamples: 10000,
			SyntheticSeed:    42,
		},
		Events: EventsConfig{
			Enabled:       true,
			FeedbackTopic: "feedback.recorded",
			BufferSize:    256,
		},
	}
}

// LoadWithKoanf loads configuration in three layers, each overriding the last:
//  1. built-in defaults
//  2. an optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. mapped environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields splits comma-separated strings for known slice fields.
// Values that came from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(strVal, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",
	"server_timezone":  "server.timezone",

	"duckdb_path":                  "database.path",
	"duckdb_max_memory":            "database.max_memory",
	"duckdb_threads":               "database.threads",
	"seed_demo_catalog":            "database.seed_demo_catalog",
	"seed_items":                   "database.seed_items",
	"db_breaker_enabled":           "database.breaker.enabled",
	"db_breaker_max_requests":      "database.breaker.max_requests",
	"db_breaker_interval":          "database.breaker.interval",
	"db_breaker_timeout":           "database.breaker.timeout",
	"db_breaker_failure_threshold": "database.breaker.failure_threshold",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",

	"recommend_similarity_weight": "recommend.similarity_weight",
	"recommend_rating_weight":     "recommend.rating_weight",
	"recommend_frequency_weight":  "recommend.frequency_weight",
	"recommend_frequency_cap":     "recommend.frequency_cap",
	"recommend_peak_hour_bonus":   "recommend.peak_hour_bonus",
	"recommend_special_bonus":     "recommend.special_bonus",
	"recommend_seasonal_bonus":    "recommend.seasonal_bonus",
	"recommend_min_score":         "recommend.min_score",
	"recommend_max_results":       "recommend.max_results",
	"recommend_max_features":      "recommend.max_features",
	"recommend_response_limit":    "recommend.response_limit",

	"pricing_min_multiplier":    "pricing.min_multiplier",
	"pricing_max_multiplier":    "pricing.max_multiplier",
	"pricing_num_trees":         "pricing.num_trees",
	"pricing_max_depth":         "pricing.max_depth",
	"pricing_min_samples_split": "pricing.min_samples_split",
	"pricing_min_samples_leaf":  "pricing.min_samples_leaf",
	"pricing_max_features":      "pricing.max_features",
	"pricing_seed":              "pricing.seed",
	"pricing_workers":           "pricing.workers",
	"pricing_train_on_startup":  "pricing.train_on_startup",
	"pricing_train_interval":    "pricing.train_interval",
	"pricing_train_timeout":     "pricing.train_timeout",
	"pricing_source":            "pricing.source",
	"pricing_synthetic_samples": "pricing.synthetic_samples",
	"pricing_synthetic_seed":    "pricing.synthetic_seed",

	"events_enabled":        "events.enabled",
	"events_feedback_topic": "events.feedback_topic",
	"events_buffer_size":    "events.buffer_size",
}

// envTransformFunc maps an environment variable name to its config path.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - PRICING_TRAIN_INTERVAL -> pricing.train_interval
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
