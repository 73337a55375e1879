// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type mockCatalog struct {
	items []MenuItem
	err   error
}

func (m *mockCatalog) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

type mockProfiles struct {
	profiles map[string]UserProfile
	err      error
}

func (m *mockProfiles) GetProfile(ctx context.Context, userID string) (UserProfile, error) {
	if m.err != nil {
		return UserProfile{}, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return UserProfile{UserID: userID}, nil
	}
	return p, nil
}

func TestService_Recommend(t *testing.T) {
	t.Parallel()

	peak := time.Date(2026, 3, 4, 19, 0, 0, 0, time.UTC)
	items := []MenuItem{
		{ID: "a", Name: "Dinner Special", AverageRating: Float(5), PeakHours: []int{19}},
		{ID: "b", Name: "Lunch Combo", AverageRating: Float(5), PeakHours: []int{12}},
	}

	svc := NewService(
		&mockCatalog{items: items},
		&mockProfiles{},
		newTestScorer(t, nil),
		zerolog.Nop(),
		WithClock(func() time.Time { return peak }),
	)

	results, err := svc.Recommend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Item.ID != "a" {
		t.Errorf("top item = %q, want a (peak hour bonus)", results[0].Item.ID)
	}
}

func TestService_Errors(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store unavailable")

	tests := []struct {
		name     string
		userID   string
		catalog  *mockCatalog
		profiles *mockProfiles
		check    func(error) bool
	}{
		{
			name:     "missing user",
			userID:   "",
			catalog:  &mockCatalog{items: sampleCatalog()},
			profiles: &mockProfiles{},
			check:    func(err error) bool { return errors.Is(err, ErrMissingUserID) },
		},
		{
			name:     "catalog failure",
			userID:   "u",
			catalog:  &mockCatalog{err: storeErr},
			profiles: &mockProfiles{},
			check:    func(err error) bool { return errors.Is(err, storeErr) },
		},
		{
			name:     "profile failure",
			userID:   "u",
			catalog:  &mockCatalog{items: sampleCatalog()},
			profiles: &mockProfiles{err: storeErr},
			check:    func(err error) bool { return errors.Is(err, storeErr) },
		},
		{
			name:     "empty catalog",
			userID:   "u",
			catalog:  &mockCatalog{},
			profiles: &mockProfiles{},
			check:    func(err error) bool { return errors.Is(err, ErrEmptyBatch) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(tt.catalog, tt.profiles, newTestScorer(t, nil), zerolog.Nop())
			_, err := svc.Recommend(context.Background(), tt.userID)
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
