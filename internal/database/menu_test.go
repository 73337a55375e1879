// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"errors"
	"testing"

	"github.com/tomtom215/menuscore/internal/recommend"
)

func testItem(id, name string) recommend.MenuItem {
	return recommend.MenuItem{
		ID:              id,
		Name:            name,
		Description:     "coconut curry with thai basil",
		Category:        "main",
		IsVegetarian:    true,
		IsSpicy:         true,
		AverageRating:   recommend.Float(4.2),
		OrderFrequency:  recommend.Float(40),
		PreparationTime: recommend.Float(20),
		PriceCategory:   recommend.PriceMedium,
		BasePrice:       14.5,
		PeakHours:       []int{12, 19},
	}
}

func TestUpsertMenuItem_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	want := testItem("item-1", "Green Curry")
	if err := db.UpsertMenuItem(ctx, want); err != nil {
		t.Fatalf("UpsertMenuItem() error = %v", err)
	}

	got, err := db.GetMenuItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("GetMenuItem() error = %v", err)
	}
	if got.Name != want.Name || got.Description != want.Description || got.Category != want.Category {
		t.Errorf("text fields = %q/%q/%q", got.Name, got.Description, got.Category)
	}
	if !got.IsVegetarian || got.IsVegan || !got.IsSpicy {
		t.Errorf("flags not preserved: %+v", got)
	}
	if got.AverageRating == nil || *got.AverageRating != 4.2 {
		t.Errorf("AverageRating = %v, want 4.2", got.AverageRating)
	}
	if got.PriceCategory != recommend.PriceMedium || got.BasePrice != 14.5 {
		t.Errorf("price fields = %q/%v", got.PriceCategory, got.BasePrice)
	}
	if len(got.PeakHours) != 2 || got.PeakHours[0] != 12 || got.PeakHours[1] != 19 {
		t.Errorf("PeakHours = %v, want [12 19]", got.PeakHours)
	}
}

func TestUpsertMenuItem_NullableFields(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	item := recommend.MenuItem{ID: "bare", Name: "Water"}
	if err := db.UpsertMenuItem(ctx, item); err != nil {
		t.Fatalf("UpsertMenuItem() error = %v", err)
	}

	got, err := db.GetMenuItem(ctx, "bare")
	if err != nil {
		t.Fatalf("GetMenuItem() error = %v", err)
	}
	if got.AverageRating != nil || got.OrderFrequency != nil || got.PreparationTime != nil {
		t.Errorf("absent numerics should stay nil, got %+v", got)
	}
	if len(got.PeakHours) != 0 {
		t.Errorf("PeakHours = %v, want empty", got.PeakHours)
	}
}

func TestUpsertMenuItem_ReplaceKeepsOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := db.UpsertMenuItem(ctx, testItem(id, "Item "+id)); err != nil {
			t.Fatalf("UpsertMenuItem(%s) error = %v", id, err)
		}
	}

	updated := testItem("a", "Renamed")
	updated.AverageRating = nil
	if err := db.UpsertMenuItem(ctx, updated); err != nil {
		t.Fatalf("UpsertMenuItem(update) error = %v", err)
	}

	items, err := db.ListMenuItems(ctx)
	if err != nil {
		t.Fatalf("ListMenuItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListMenuItems() returned %d items, want 3", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "b" || items[2].ID != "c" {
		t.Errorf("order = %s,%s,%s, want a,b,c", items[0].ID, items[1].ID, items[2].ID)
	}
	if items[0].Name != "Renamed" || items[0].AverageRating != nil {
		t.Errorf("update not applied: %+v", items[0])
	}
}

func TestUpsertMenuItem_RequiresID(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpsertMenuItem(testContext(t), recommend.MenuItem{Name: "x"}); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestGetMenuItem_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetMenuItem(testContext(t), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMenuItem() error = %v, want ErrNotFound", err)
	}
}

func TestListMenuItems_Empty(t *testing.T) {
	db := setupTestDB(t)

	items, err := db.ListMenuItems(testContext(t))
	if err != nil {
		t.Fatalf("ListMenuItems() error = %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("ListMenuItems() = %v, want empty non-nil slice", items)
	}
}
