// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/menuscore/internal/recommend"
)

// GetProfile implements recommend.ProfileReader. A user with no stored
// preferences gets an empty profile.
func (db *DB) GetProfile(ctx context.Context, userID string) (recommend.UserProfile, error) {
	profile, err := db.LookupProfile(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return recommend.UserProfile{
			UserID:              userID,
			FavoriteCuisines:    []string{},
			DietaryRestrictions: []string{},
		}, nil
	}
	return profile, err
}

// LookupProfile returns the stored preferences of userID, or ErrNotFound.
func (db *DB) LookupProfile(ctx context.Context, userID string) (profile recommend.UserProfile, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, ErrNotFound) {
			observe("SELECT", "user_preferences", start, nil)
			return
		}
		observe("SELECT", "user_preferences", start, err)
	}()

	var cuisines, restrictions, allergies, timing, priceRange string
	err = db.conn.QueryRowContext(ctx, `SELECT user_id, favorite_cuisines, dietary_restrictions,
		allergies, meal_timing, spice_preference, price_range, special_occasions, updated_at
		FROM user_preferences WHERE user_id = ?`, userID).Scan(
		&profile.UserID, &cuisines, &restrictions,
		&allergies, &timing, &profile.SpicePreference, &priceRange, &profile.SpecialOccasions, &profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return recommend.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return recommend.UserProfile{}, fmt.Errorf("failed to query preferences for %s: %w", userID, err)
	}

	profile.PriceRange = recommend.PriceCategory(priceRange)
	lists := []struct {
		raw string
		dst *[]string
	}{
		{cuisines, &profile.FavoriteCuisines},
		{restrictions, &profile.DietaryRestrictions},
		{allergies, &profile.Allergies},
		{timing, &profile.MealTiming},
	}
	for _, l := range lists {
		if err = decodeStrings(l.raw, l.dst); err != nil {
			return recommend.UserProfile{}, fmt.Errorf("failed to decode preferences for %s: %w", userID, err)
		}
	}
	return profile, nil
}

// UpsertProfile stores the full preference set of a user, replacing any
// previous one.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (db *DB) UpsertProfile(ctx context.Context, profile recommend.UserProfile) (err error) {
	start := time.Now()
	defer func() { observe("UPSERT", "user_preferences", start, err) }()

	if profile.UserID == "" {
		return fmt.Errorf("user id is required")
	}

	encoded := make([]string, 0, 4)
	for _, list := range [][]string{
		profile.FavoriteCuisines, profile.DietaryRestrictions, profile.Allergies, profile.MealTiming,
	} {
		if list == nil {
			list = []string{}
		}
		b, encErr := json.Marshal(list)
		if encErr != nil {
			return fmt.Errorf("failed to encode preferences: %w", encErr)
		}
		encoded = append(encoded, string(b))
	}

	_, err = db.conn.ExecContext(ctx, `INSERT INTO user_preferences (
		user_id, favorite_cuisines, dietary_restrictions, allergies, meal_timing,
		spice_preference, price_range, special_occasions, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (user_id) DO UPDATE SET
		favorite_cuisines = excluded.favorite_cuisines,
		dietary_restrictions = excluded.dietary_restrictions,
		allergies = excluded.allergies,
		meal_timing = excluded.meal_timing,
		spice_preference = excluded.spice_preference,
		price_range = excluded.price_range,
		special_occasions = excluded.special_occasions,
		updated_at = excluded.updated_at`,
		profile.UserID, encoded[0], encoded[1], encoded[2], encoded[3],
		profile.SpicePreference, string(profile.PriceRange), profile.SpecialOccasions, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences for %s: %w", profile.UserID, err)
	}
	return nil
}

func decodeStrings(raw string, dst *[]string) error {
	*dst = []string{}
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
