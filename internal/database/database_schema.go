// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with a timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// menu_items keeps a sequence column so ListMenuItems can return catalog
// order. JSON list columns are stored as TEXT and decoded in Go.
var tableStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS menu_items_seq START 1;`,

	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		seq BIGINT NOT NULL DEFAULT nextval('menu_items_seq'),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		is_vegetarian BOOLEAN NOT NULL DEFAULT false,
		is_vegan BOOLEAN NOT NULL DEFAULT false,
		is_gluten_free BOOLEAN NOT NULL DEFAULT false,
		is_spicy BOOLEAN NOT NULL DEFAULT false,
		is_special BOOLEAN NOT NULL DEFAULT false,
		is_seasonal BOOLEAN NOT NULL DEFAULT false,
		average_rating DOUBLE,
		order_frequency DOUBLE,
		preparation_time DOUBLE,
		price_category TEXT NOT NULL DEFAULT '',
		base_price DOUBLE NOT NULL DEFAULT 0,
		peak_hours TEXT NOT NULL DEFAULT '[]',
		updated_at TIMESTAMP NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id TEXT PRIMARY KEY,
		favorite_cuisines TEXT NOT NULL DEFAULT '[]',
		dietary_restrictions TEXT NOT NULL DEFAULT '[]',
		allergies TEXT NOT NULL DEFAULT '[]',
		meal_timing TEXT NOT NULL DEFAULT '[]',
		spice_preference TEXT NOT NULL DEFAULT '',
		price_range TEXT NOT NULL DEFAULT '',
		special_occasions BOOLEAN NOT NULL DEFAULT false,
		updated_at TIMESTAMP NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS pricing_samples (
		base_price DOUBLE NOT NULL,
		hour BIGINT NOT NULL,
		day_of_week BIGINT NOT NULL,
		is_weekend BIGINT NOT NULL,
		is_holiday BIGINT NOT NULL,
		current_demand BIGINT NOT NULL,
		competitor_price_ratio DOUBLE NOT NULL,
		weather_condition TEXT NOT NULL,
		event_type TEXT NOT NULL,
		historical_sales BIGINT NOT NULL,
		inventory_level BIGINT NOT NULL,
		category TEXT NOT NULL,
		preparation_time BIGINT NOT NULL,
		price_multiplier DOUBLE NOT NULL
	);`,
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, stmt := range tableStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_menu_items_seq ON menu_items(seq);`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_user ON feedback(user_id);`,
}

// createIndexes creates secondary indexes.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, stmt := range indexStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
