// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"strings"
)

// ItemText builds the document that represents an item in the shared text space.
//
// The parts are name, description, category, the dietary tags whose flags are
// set, and "spicy" or "mild". Empty parts are skipped, so absent optional
// fields contribute nothing.
//
//nolint:gocritic // hugeParam: item passed by value for immutability
func ItemText(item MenuItem) (string, error) {
	if strings.TrimSpace(item.Name) == "" {
		return "", &MissingFieldError{Field: "name"}
	}

	parts := make([]string, 0, 7)
	parts = append(parts, item.Name, item.Description, item.Category)
	if item.IsVegetarian {
		parts = append(parts, "vegetarian")
	}
	if item.IsVegan {
		parts = append(parts, "vegan")
	}
	if item.IsGlutenFree {
		parts = append(parts, "gluten-free")
	}
	if item.IsSpicy {
		parts = append(parts, "spicy")
	} else {
		parts = append(parts, "mild")
	}

	return joinLower(parts), nil
}

// UserText builds the document that represents a user profile.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func UserText(profile UserProfile) string {
	parts := make([]string, 0, len(profile.FavoriteCuisines)+len(profile.DietaryRestrictions)+1)
	parts = append(parts, profile.FavoriteCuisines...)
	parts = append(parts, profile.DietaryRestrictions...)
	parts = append(parts, profile.SpicePreference)
	return joinLower(parts)
}

func joinLower(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToLower(p))
	}
	return b.String()
}
