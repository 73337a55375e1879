// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"fmt"
)

// schemaChange upgrades the catalog, preference, feedback or sample tables
// created by createTables. Versions increase by one.
type schemaChange struct {
	Version   int
	Name      string
	Statement string
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// schemaChanges is append-only. A released entry is never edited; ship a
// new version instead.
var schemaChanges = []schemaChange{
	{
		Version:   1,
		Name:      "feedback_item_index",
		Statement: `CREATE INDEX IF NOT EXISTS idx_feedback_item ON feedback(item_id);`,
	},
}

func (db *DB) appliedSchemaVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema versions: %w", err)
	}
	defer rows.Close()

	seen := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan schema version: %w", err)
		}
		seen[v] = true
	}
	return seen, rows.Err()
}

// applySchemaChanges brings an existing menuscore database up to the latest
// schema. Each change and its version row commit together.
func (db *DB) applySchemaChanges() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	seen, err := db.appliedSchemaVersions(ctx)
	if err != nil {
		return err
	}

	for _, change := range schemaChanges {
		if seen[change.Version] {
			continue
		}
		if err := db.applySchemaChange(ctx, change); err != nil {
			return err
		}
		db.logger.Info().
			Int("version", change.Version).
			Str("change", change.Name).
			Msg("Upgraded menuscore schema")
	}
	return nil
}

func (db *DB) applySchemaChange(ctx context.Context, change schemaChange) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("schema v%d: begin: %w", change.Version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, change.Statement); err != nil {
		return fmt.Errorf("schema v%d (%s): %w", change.Version, change.Name, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
		change.Version, change.Name); err != nil {
		return fmt.Errorf("schema v%d: record version: %w", change.Version, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("schema v%d: commit: %w", change.Version, err)
	}
	return nil
}

// GetCurrentSchemaVersion reports the newest schema change recorded in the
// database, or 0 for a database created before any change shipped.
func (db *DB) GetCurrentSchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
