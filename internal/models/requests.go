// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package models

// RecommendRequest is the body of POST /recommend. Limit 0 means the
// configured default.
type RecommendRequest struct {
	UserID string `json:"user_id" validate:"required,notblank,max=128"`
	Limit  int    `json:"limit,omitempty" validate:"min=0,max=100"`
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	UserID  string `json:"user_id" validate:"required,notblank,max=128"`
	ItemID  string `json:"item_id" validate:"required,notblank,max=128"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

// PreferencesRequest is the body of PUT /preferences/{userID}.
type PreferencesRequest struct {
	FavoriteCuisines    []string `json:"favorite_cuisines" validate:"max=50,dive,max=64"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"max=20,dive,max=64"`
	Allergies           []string `json:"allergies" validate:"max=20,dive,max=64"`
	MealTiming          []string `json:"meal_timing" validate:"max=10,dive,max=32"`
	SpicePreference     string   `json:"spice_preference,omitempty" validate:"omitempty,oneof=low medium high"`
	PriceRange          string   `json:"price_range,omitempty" validate:"omitempty,price_category"`
	SpecialOccasions    bool     `json:"special_occasions"`
}

// MenuItemRequest is the body of PUT /menu/{itemID}.
type MenuItemRequest struct {
	Name            string   `json:"name" validate:"required,notblank,max=200"`
	Description     string   `json:"description,omitempty" validate:"max=2000"`
	Category        string   `json:"category,omitempty" validate:"max=64"`
	IsVegetarian    bool     `json:"is_vegetarian"`
	IsVegan         bool     `json:"is_vegan"`
	IsGlutenFree    bool     `json:"is_gluten_free"`
	IsSpicy         bool     `json:"is_spicy"`
	IsSpecial       bool     `json:"is_special"`
	IsSeasonal      bool     `json:"is_seasonal"`
	AverageRating   *float64 `json:"average_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	OrderFrequency  *float64 `json:"order_frequency,omitempty" validate:"omitempty,gte=0"`
	PreparationTime *float64 `json:"preparation_time,omitempty" validate:"omitempty,gte=0,lte=600"`
	PriceCategory   string   `json:"price_category,omitempty" validate:"omitempty,price_category"`
	BasePrice       float64  `json:"base_price" validate:"gte=0"`
	PeakHours       []int    `json:"peak_hours,omitempty" validate:"max=24,dive,gte=0,lte=23"`
}

// QuoteRequest is the body of POST /pricing/quote. Either BasePrice or ItemID
// must be given; ItemID looks up the catalog base price.
type QuoteRequest struct {
	BasePrice *float64               `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	ItemID    string                 `json:"item_id,omitempty" validate:"max=128"`
	Features  map[string]interface{} `json:"features" validate:"required"`
}
