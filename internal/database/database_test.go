// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menuscore/internal/config"
)

// testDBSemaphore serializes DuckDB usage across tests. It is held for the
// whole test, not just creation, since concurrent CGO calls from many tests
// can hang under CI pressure.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an in-memory database that is closed when the test ends.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	cfg := &config.DatabaseConfig{
		Path:      memoryPath,
		MaxMemory: "512MB",
		Threads:   2,
	}

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		db, err := New(cfg, zerolog.Nop())
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNew_InMemory(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Fatal("Conn() returned nil")
	}

	for _, table := range []string{"menu_items", "user_preferences", "feedback", "pricing_samples", "schema_migrations"} {
		var n int
		err := db.Conn().QueryRowContext(ctx,
			`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?`, table).Scan(&n)
		if err != nil {
			t.Fatalf("information_schema query for %s: %v", table, err)
		}
		if n != 1 {
			t.Errorf("table %s not created", table)
		}
	}
}

func TestNew_SchemaVersion(t *testing.T) {
	db := setupTestDB(t)

	version, err := db.GetCurrentSchemaVersion(testContext(t))
	if err != nil {
		t.Fatalf("GetCurrentSchemaVersion() error = %v", err)
	}
	want := schemaChanges[len(schemaChanges)-1].Version
	if version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}
}

func TestApplySchemaChanges_RecordsEachVersionOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	if err := db.applySchemaChanges(); err != nil {
		t.Fatalf("second applySchemaChanges() error = %v", err)
	}

	var rows int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&rows); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if rows != len(schemaChanges) {
		t.Errorf("schema_migrations has %d rows, want %d", rows, len(schemaChanges))
	}

	seen, err := db.appliedSchemaVersions(ctx)
	if err != nil {
		t.Fatalf("appliedSchemaVersions() error = %v", err)
	}
	for _, change := range schemaChanges {
		if !seen[change.Version] {
			t.Errorf("schema change v%d (%s) not recorded", change.Version, change.Name)
		}
	}
}

func TestNew_ReopenFileIsIdempotent(t *testing.T) {
	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	cfg := &config.DatabaseConfig{
		Path:      filepath.Join(t.TempDir(), "nested", "menuscore.duckdb"),
		MaxMemory: "256MB",
		Threads:   1,
	}
	ctx := testContext(t)

	db, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.UpsertMenuItem(ctx, testItem("item-1", "Green Curry")); err != nil {
		t.Fatalf("UpsertMenuItem() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	defer db.Close()

	n, err := db.CountMenuItems(ctx)
	if err != nil {
		t.Fatalf("CountMenuItems() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountMenuItems() after reopen = %d, want 1", n)
	}
}

func TestCloseWithLog(t *testing.T) {
	closeWithLog(nil, "nil")

	c := &mockCloser{}
	closeWithLog(c, "mock")
	if !c.closed {
		t.Error("closeWithLog did not close the resource")
	}

	c = &mockCloser{err: context.Canceled}
	closeQuietly(c)
	if !c.closed {
		t.Error("closeQuietly did not close the resource")
	}
}

type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}
