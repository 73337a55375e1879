// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"errors"
	"testing"
)

func TestItemText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item MenuItem
		want string
	}{
		{
			name: "all flags",
			item: MenuItem{
				Name:         "Garden Bowl",
				Description:  "Fresh Greens",
				Category:     "Salad",
				IsVegetarian: true,
				IsVegan:      true,
				IsGlutenFree: true,
				IsSpicy:      true,
			},
			want: "garden bowl fresh greens salad vegetarian vegan gluten-free spicy",
		},
		{
			name: "not spicy is mild",
			item: MenuItem{Name: "Veggie Pizza", Category: "main", IsVegetarian: true},
			want: "veggie pizza main vegetarian mild",
		},
		{
			name: "absent optional fields are skipped",
			item: MenuItem{Name: "Water"},
			want: "water mild",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ItemText(tt.item)
			if err != nil {
				t.Fatalf("ItemText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ItemText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemText_MissingName(t *testing.T) {
	t.Parallel()

	_, err := ItemText(MenuItem{ID: "x", Name: "   "})
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "name" {
		t.Errorf("Field = %q, want name", missing.Field)
	}
}

func TestUserText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile UserProfile
		want    string
	}{
		{
			name: "full profile",
			profile: UserProfile{
				FavoriteCuisines:    []string{"Italian", "Thai"},
				DietaryRestrictions: []string{"vegetarian"},
				SpicePreference:     "Hot",
			},
			want: "italian thai vegetarian hot",
		},
		{
			name:    "empty profile",
			profile: UserProfile{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UserText(tt.profile); got != tt.want {
				t.Errorf("UserText() = %q, want %q", got, tt.want)
			}
		})
	}
}
