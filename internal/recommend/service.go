// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrMissingUserID is returned when a recommendation request names no user.
var ErrMissingUserID = errors.New("user id is required")

// Service fetches the catalog and the user's profile from their collaborators
// and scores them at the current time.
type Service struct {
	catalog  CatalogReader
	profiles ProfileReader
	scorer   *Scorer
	now      func() time.Time
	logger   zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used for peak hour bonuses.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a recommendation service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(catalog CatalogReader, profiles ProfileReader, scorer *Scorer, logger zerolog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		catalog:  catalog,
		profiles: profiles,
		scorer:   scorer,
		now:      time.Now,
		logger:   logger.With().Str("component", "recommend-service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend returns the ranked recommendations for userID.
func (s *Service) Recommend(ctx context.Context, userID string) ([]ScoredItem, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	items, err := s.catalog.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	results, err := s.scorer.Score(items, profile, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("catalog_size", len(items)).
		Int("returned", len(results)).
		Msg("recommendation complete")

	return results, nil
}
