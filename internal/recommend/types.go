// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"context"
	"time"
)

// PriceCategory is the coarse price bucket of a menu item or a user's price range.
type PriceCategory string

// Price categories.
const (
	PriceLow    PriceCategory = "low"
	PriceMedium PriceCategory = "medium"
	PriceHigh   PriceCategory = "high"
)

// Rank returns the ordinal used by the price_match feature.
// Unknown or empty categories rank as medium.
func (p PriceCategory) Rank() int {
	switch p {
	case PriceLow:
		return 0
	case PriceHigh:
		return 2
	default:
		return 1
	}
}

// MenuItem is a read-only snapshot of a catalog entry.
//
// Optional numeric attributes are pointers so that an absent value can be
// told apart from zero and replaced by the documented default.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	IsVegetarian bool `json:"is_vegetarian"`
	IsVegan      bool `json:"is_vegan"`
	IsGlutenFree bool `json:"is_gluten_free"`
	IsSpicy      bool `json:"is_spicy"`
	IsSpecial    bool `json:"is_special"`
	IsSeasonal   bool `json:"is_seasonal"`

	// AverageRating is in [0, 5]. Default when absent: 3.0.
	AverageRating *float64 `json:"average_rating,omitempty"`

	// OrderFrequency is a non-negative order count. Default when absent: 0.
	OrderFrequency *float64 `json:"order_frequency,omitempty"`

	// PreparationTime is in minutes. Default when absent: 30.
	PreparationTime *float64 `json:"preparation_time,omitempty"`

	PriceCategory PriceCategory `json:"price_category,omitempty"`

	// BasePrice is the undiscounted list price used for pricing quotes.
	BasePrice float64 `json:"base_price,omitempty"`

	// PeakHours lists hours of day (0-23) when the item is in high demand.
	PeakHours []int `json:"peak_hours,omitempty"`
}

// Clone returns a deep copy of the item.
//
//nolint:gocritic // value receiver keeps the original untouched
func (m MenuItem) Clone() MenuItem {
	out := m
	out.AverageRating = clonePtr(m.AverageRating)
	out.OrderFrequency = clonePtr(m.OrderFrequency)
	out.PreparationTime = clonePtr(m.PreparationTime)
	if m.PeakHours != nil {
		out.PeakHours = append([]int(nil), m.PeakHours...)
	}
	return out
}

// IsPeakHour reports whether hour is one of the item's peak hours.
func (m *MenuItem) IsPeakHour(hour int) bool {
	for _, h := range m.PeakHours {
		if h == hour {
			return true
		}
	}
	return false
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float returns a pointer to v. It is a convenience for building MenuItem literals.
func Float(v float64) *float64 {
	return &v
}

// UserProfile holds the preferences a recommendation request is scored against.
// The engine keeps no profile state between calls.
type UserProfile struct {
	UserID              string        `json:"user_id"`
	FavoriteCuisines    []string      `json:"favorite_cuisines"`
	DietaryRestrictions []string      `json:"dietary_restrictions"`
	SpicePreference     string        `json:"spice_preference,omitempty"`
	PriceRange          PriceCategory `json:"price_range,omitempty"`

	// Stored with the profile but not used for scoring.
	Allergies        []string  `json:"allergies,omitempty"`
	MealTiming       []string  `json:"meal_timing,omitempty"`
	SpecialOccasions bool      `json:"special_occasions"`
	UpdatedAt        time.Time `json:"updated_at,omitempty"`
}

// ScoredItem is a menu item paired with its final score.
type ScoredItem struct {
	// Item is a copy of the catalog entry; callers' items are never modified.
	Item MenuItem `json:"item"`

	// Score is the blended score rounded to three decimals.
	Score float64 `json:"score"`

	// SimilarityScore is the text similarity in [0, 1] rounded to three decimals.
	SimilarityScore float64 `json:"similarity_score"`

	// Features holds the batch-standardized numeric features of the item.
	Features map[string]float64 `json:"features,omitempty"`
}

// CatalogReader returns the full current menu.
type CatalogReader interface {
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
}

// ProfileReader returns the preferences of a user. Implementations return
// an empty profile, not an error, when the user has none on record.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (UserProfile, error)
}
