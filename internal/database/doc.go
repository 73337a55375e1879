// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

// Package database is the DuckDB-backed store for the menu catalog, user
// preferences, rating feedback and pricing history.
//
// # Tables
//
//   - menu_items: the catalog, returned in insertion order
//   - user_preferences: one row per user; list fields are JSON text
//   - feedback: 1-5 star ratings, folded into menu_items.average_rating
//   - pricing_samples: historical pricing rows used to train the regressor
//
// Schema changes after the initial tables go through the versioned
// migrations in migrations.go.
//
// # Read path
//
// *DB implements recommend.CatalogReader, recommend.ProfileReader and
// pricing.SampleSource. BreakerStore wraps the recommendation reads with a
// gobreaker circuit breaker so a failing database returns ErrUnavailable
// quickly instead of tying up request goroutines.
//
// # Usage
//
//	db, err := database.New(&cfg.Database, logger)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	items, err := db.ListMenuItems(ctx)
//
// Every query records its duration and errors under the duckdb_query_*
// Prometheus metrics.
package database
