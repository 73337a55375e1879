// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"reflect"
	"testing"

	"github.com/tomtom215/menuscore/internal/validation"
)

func TestGenerateMenuItems_Deterministic(t *testing.T) {
	t.Parallel()

	a := GenerateMenuItems(12, 7)
	b := GenerateMenuItems(12, 7)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different catalogs")
	}

	c := GenerateMenuItems(12, 8)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical catalogs")
	}
}

func TestGenerateMenuItems_Plausible(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, item := range GenerateMenuItems(50, 42) {
		if seen[item.ID] {
			t.Errorf("duplicate id %s", item.ID)
		}
		seen[item.ID] = true

		if item.Name == "" || item.Description == "" {
			t.Errorf("%s: empty name or description", item.ID)
		}
		if item.IsVegan && !item.IsVegetarian {
			t.Errorf("%s: vegan but not vegetarian", item.ID)
		}
		if r := *item.AverageRating; r < 0 || r > 5 {
			t.Errorf("%s: rating %v out of range", item.ID, r)
		}
		if item.BasePrice <= 0 {
			t.Errorf("%s: base price %v", item.ID, item.BasePrice)
		}
		if err := validation.GetValidator().Var(string(item.PriceCategory), "required,price_category"); err != nil {
			t.Errorf("%s: price category %q invalid", item.ID, item.PriceCategory)
		}
		for _, h := range item.PeakHours {
			if h < 0 || h > 23 {
				t.Errorf("%s: peak hour %d", item.ID, h)
			}
		}
	}
}

func TestSeedDemoCatalog_OnlyWhenEmpty(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	n, err := db.SeedDemoCatalog(ctx, 10, 1)
	if err != nil {
		t.Fatalf("SeedDemoCatalog() error = %v", err)
	}
	if n != 10 {
		t.Errorf("SeedDemoCatalog() inserted %d, want 10", n)
	}

	n, err = db.SeedDemoCatalog(ctx, 10, 2)
	if err != nil {
		t.Fatalf("second SeedDemoCatalog() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second SeedDemoCatalog() inserted %d, want 0", n)
	}

	count, err := db.CountMenuItems(ctx)
	if err != nil {
		t.Fatalf("CountMenuItems() error = %v", err)
	}
	if count != 10 {
		t.Errorf("CountMenuItems() = %d, want 10", count)
	}
}
