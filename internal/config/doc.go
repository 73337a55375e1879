// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package config loads and validates Menuscore configuration.

# Configuration Sources

Values are layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, from CONFIG_PATH or the first of DefaultConfigPaths
 3. Environment variables listed in the mapping table

Environment variables that are not in the table are ignored.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT: bind address (default 0.0.0.0:8080)
  - SERVER_TIMEOUT: request timeout (default 30s)
  - SERVER_TIMEZONE: IANA zone for peak hour matching (default UTC)
  - ENVIRONMENT: development, staging or production

Database:
  - DUCKDB_PATH: database file (default /data/menuscore.duckdb)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - SEED_DEMO_CATALOG, SEED_ITEMS: generate a demo menu on first start
  - DB_BREAKER_*: circuit breaker in front of the store

Recommendations:
  - RECOMMEND_SIMILARITY_WEIGHT, RECOMMEND_RATING_WEIGHT, RECOMMEND_FREQUENCY_WEIGHT
  - RECOMMEND_PEAK_HOUR_BONUS, RECOMMEND_SPECIAL_BONUS, RECOMMEND_SEASONAL_BONUS
  - RECOMMEND_MIN_SCORE, RECOMMEND_MAX_RESULTS, RECOMMEND_RESPONSE_LIMIT

Pricing:
  - PRICING_MIN_MULTIPLIER, PRICING_MAX_MULTIPLIER: safety band (default 0.8 to 1.3)
  - PRICING_NUM_TREES, PRICING_MAX_DEPTH, PRICING_SEED, PRICING_WORKERS
  - PRICING_SOURCE: synthetic or database
  - PRICING_TRAIN_ON_STARTUP, PRICING_TRAIN_INTERVAL, PRICING_TRAIN_TIMEOUT

Events:
  - EVENTS_ENABLED, EVENTS_FEEDBACK_TOPIC, EVENTS_BUFFER_SIZE

Logging and HTTP hardening:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS, TRUSTED_PROXIES (comma-separated)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
