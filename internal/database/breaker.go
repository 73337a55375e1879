// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/metrics"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// breakerName labels the store breaker in metrics.
const breakerName = "duckdb-store"

// ReadStore is the read side the recommendation path depends on.
type ReadStore interface {
	recommend.CatalogReader
	recommend.ProfileReader
}

// BreakerStore guards catalog and profile reads with a circuit breaker.
// While the breaker is open, reads fail fast with ErrUnavailable.
//
// The breaker uses wall-clock time for its interval and timeout; tests
// exercise it through failure counts rather than waiting out the timeout.
type BreakerStore struct {
	next   ReadStore
	cb     *gobreaker.CircuitBreaker[any]
	logger zerolog.Logger
}

// NewBreakerStore wraps next. When cfg.Enabled is false reads pass straight
// through.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreakerStore(next ReadStore, cfg config.BreakerConfig, logger zerolog.Logger) *BreakerStore {
	bs := &BreakerStore{
		next:   next,
		logger: logger.With().Str("component", "store-breaker").Logger(),
	}
	if !cfg.Enabled {
		return bs
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	bs.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A missing row or a caller giving up says nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			bs.logger.Warn().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Circuit breaker state transition")
			metrics.RecordBreakerTransition(name, stateToString(from), stateToString(to), stateToInt(to))
		},
	})
	return bs
}

// State returns the breaker state name, or "disabled".
func (bs *BreakerStore) State() string {
	if bs.cb == nil {
		return "disabled"
	}
	return stateToString(bs.cb.State())
}

// ListMenuItems implements recommend.CatalogReader.
func (bs *BreakerStore) ListMenuItems(ctx context.Context) ([]recommend.MenuItem, error) {
	return castResult[[]recommend.MenuItem](bs.execute(func() (any, error) {
		return bs.next.ListMenuItems(ctx)
	}))
}

// GetProfile implements recommend.ProfileReader.
func (bs *BreakerStore) GetProfile(ctx context.Context, userID string) (recommend.UserProfile, error) {
	return castResult[recommend.UserProfile](bs.execute(func() (any, error) {
		return bs.next.GetProfile(ctx, userID)
	}))
}

func (bs *BreakerStore) execute(fn func() (any, error)) (any, error) {
	if bs.cb == nil {
		return fn()
	}

	result, err := bs.cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordBreakerRequest(breakerName, "rejected")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	case err != nil:
		metrics.RecordBreakerRequest(breakerName, "failure")
		return nil, err
	}
	metrics.RecordBreakerRequest(breakerName, "success")
	return result, nil
}

func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
