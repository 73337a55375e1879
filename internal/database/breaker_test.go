// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/recommend"
)

type stubStore struct {
	err   error
	calls atomic.Int32
}

func (s *stubStore) ListMenuItems(context.Context) ([]recommend.MenuItem, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []recommend.MenuItem{{ID: "a", Name: "A"}}, nil
}

func (s *stubStore) GetProfile(_ context.Context, userID string) (recommend.UserProfile, error) {
	s.calls.Add(1)
	if s.err != nil {
		return recommend.UserProfile{}, s.err
	}
	return recommend.UserProfile{UserID: userID}, nil
}

func breakerConfig() config.BreakerConfig {
	return config.BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 3,
	}
}

func TestBreakerStore_PassesThrough(t *testing.T) {
	t.Parallel()

	bs := NewBreakerStore(&stubStore{}, breakerConfig(), zerolog.Nop())

	items, err := bs.ListMenuItems(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("ListMenuItems() = %v, %v", items, err)
	}
	profile, err := bs.GetProfile(context.Background(), "u1")
	if err != nil || profile.UserID != "u1" {
		t.Fatalf("GetProfile() = %+v, %v", profile, err)
	}
	if bs.State() != "closed" {
		t.Errorf("State() = %q, want closed", bs.State())
	}
}

func TestBreakerStore_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	stub := &stubStore{err: boom}
	bs := NewBreakerStore(stub, breakerConfig(), zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := bs.ListMenuItems(ctx); !errors.Is(err, boom) {
			t.Fatalf("call %d error = %v, want underlying error", i, err)
		}
	}
	if bs.State() != "open" {
		t.Fatalf("State() = %q, want open", bs.State())
	}

	_, err := bs.GetProfile(ctx, "u1")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("open breaker error = %v, want ErrUnavailable", err)
	}
	if got := stub.calls.Load(); got != 3 {
		t.Errorf("underlying store called %d times, want 3", got)
	}
}

func TestBreakerStore_NotFoundDoesNotTrip(t *testing.T) {
	t.Parallel()

	bs := NewBreakerStore(&stubStore{err: ErrNotFound}, breakerConfig(), zerolog.Nop())
	for i := 0; i < 10; i++ {
		if _, err := bs.ListMenuItems(context.Background()); !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	}
	if bs.State() != "closed" {
		t.Errorf("State() = %q, want closed", bs.State())
	}
}

func TestBreakerStore_Disabled(t *testing.T) {
	t.Parallel()

	cfg := breakerConfig()
	cfg.Enabled = false
	boom := errors.New("boom")
	bs := NewBreakerStore(&stubStore{err: boom}, cfg, zerolog.Nop())

	for i := 0; i < 10; i++ {
		if _, err := bs.ListMenuItems(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("error = %v, want underlying error", err)
		}
	}
	if bs.State() != "disabled" {
		t.Errorf("State() = %q, want disabled", bs.State())
	}
}

func TestBreakerStore_WrapsDB(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	if err := db.UpsertMenuItem(ctx, testItem("item-1", "Green Curry")); err != nil {
		t.Fatalf("UpsertMenuItem() error = %v", err)
	}

	var reader ReadStore = NewBreakerStore(db, breakerConfig(), zerolog.Nop())
	items, err := reader.ListMenuItems(ctx)
	if err != nil || len(items) != 1 {
		t.Errorf("ListMenuItems() = %v, %v", items, err)
	}
}
