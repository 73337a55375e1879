// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package main is the entry point for the Menuscore server.

Menuscore ranks a restaurant's menu for each guest by blending text similarity
with ratings, popularity and time-of-day bonuses, and quotes dynamic prices
from a random forest trained on pricing history.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("menuscore")
	├── DataSupervisor ("data-layer")
	│   └── feedback-consumer (rating updater, when events are enabled)
	├── ModelSupervisor ("model-layer")
	│   └── pricing-trainer (startup and periodic training)
	└── APISupervisor ("api-layer")
	    └── http-server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog
 3. Database: DuckDB catalog, preferences, feedback and pricing samples
 4. Demo catalog seeding (SEED_DEMO_CATALOG=true)
 5. Recommendation scorer, pricing predictor and feedback event bus
 6. Supervisor tree
 7. Graceful shutdown on SIGINT or SIGTERM

# Pricing Samples

PRICING_SOURCE selects the training table: "synthetic" draws a reproducible
history from the built-in generator, "database" reads the pricing_samples
table filled by "menuctl generate" or an external loader.

# Example Usage

	export DUCKDB_PATH=./data/menuscore.duckdb
	export SEED_DEMO_CATALOG=true
	./menuscore

	curl -s -XPOST localhost:8080/api/v1/recommend -d '{"user_id":"guest-1"}'
*/
package main
