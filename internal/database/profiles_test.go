// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/menuscore/internal/recommend"
)

func TestGetProfile_DefaultWhenMissing(t *testing.T) {
	db := setupTestDB(t)

	profile, err := db.GetProfile(testContext(t), "newcomer")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.UserID != "newcomer" {
		t.Errorf("UserID = %q, want newcomer", profile.UserID)
	}
	if len(profile.FavoriteCuisines) != 0 || len(profile.DietaryRestrictions) != 0 {
		t.Errorf("expected empty profile, got %+v", profile)
	}
}

func TestLookupProfile_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LookupProfile(testContext(t), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupProfile() error = %v, want ErrNotFound", err)
	}
}

func TestUpsertProfile_RoundTripAndReplace(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	in := recommend.UserProfile{
		UserID:              "u1",
		FavoriteCuisines:    []string{"thai", "italian"},
		DietaryRestrictions: []string{"vegetarian"},
		Allergies:           []string{"peanut"},
		MealTiming:          []string{"dinner"},
		SpicePreference:     "high",
		PriceRange:          recommend.PriceLow,
		SpecialOccasions:    true,
	}
	if err := db.UpsertProfile(ctx, in); err != nil {
		t.Fatalf("UpsertProfile() error = %v", err)
	}

	got, err := db.LookupProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("LookupProfile() error = %v", err)
	}
	if !reflect.DeepEqual(got.FavoriteCuisines, in.FavoriteCuisines) ||
		!reflect.DeepEqual(got.DietaryRestrictions, in.DietaryRestrictions) ||
		!reflect.DeepEqual(got.Allergies, in.Allergies) ||
		!reflect.DeepEqual(got.MealTiming, in.MealTiming) {
		t.Errorf("lists not preserved: %+v", got)
	}
	if got.SpicePreference != "high" || got.PriceRange != recommend.PriceLow || !got.SpecialOccasions {
		t.Errorf("scalars not preserved: %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}

	// A second upsert replaces the whole record.
	if err := db.UpsertProfile(ctx, recommend.UserProfile{UserID: "u1"}); err != nil {
		t.Fatalf("UpsertProfile(replace) error = %v", err)
	}
	got, err = db.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if len(got.FavoriteCuisines) != 0 || got.SpicePreference != "" || got.SpecialOccasions {
		t.Errorf("replace left stale values: %+v", got)
	}
}

func TestUpsertProfile_RequiresUserID(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpsertProfile(testContext(t), recommend.UserProfile{}); err == nil {
		t.Error("expected error for empty user id")
	}
}
