// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"

	"github.com/tomtom215/menuscore/internal/recommend"
)

var (
	seedCuisines = []string{"italian", "thai", "mexican", "indian", "japanese", "french", "greek", "korean"}
	seedDishes   = []string{"curry", "noodles", "tacos", "pasta", "salad", "soup", "risotto", "dumplings", "stew", "skewers"}
	seedStyles   = []string{"grilled", "roasted", "crispy", "smoked", "braised", "fresh", "spicy", "creamy"}
	seedMains    = []string{"chicken", "tofu", "beef", "shrimp", "mushroom", "lentil", "salmon", "eggplant"}
	seedCourses  = []string{"appetizer", "main", "dessert", "beverage"}
	seedPrices   = []recommend.PriceCategory{recommend.PriceLow, recommend.PriceMedium, recommend.PriceHigh}
)

// meatless mains are eligible for the vegetarian and vegan flags.
var meatless = map[string]bool{"tofu": true, "mushroom": true, "lentil": true, "eggplant": true}

// GenerateMenuItems builds n plausible menu items. The same seed always
// produces the same items.
func GenerateMenuItems(n int, seed int64) []recommend.MenuItem {
	fake := faker.NewWithSeed(rand.NewSource(seed)) //nolint:gosec // reproducible demo data

	items := make([]recommend.MenuItem, 0, n)
	for i := 0; i < n; i++ {
		cuisine := fake.RandomStringElement(seedCuisines)
		style := fake.RandomStringElement(seedStyles)
		main := fake.RandomStringElement(seedMains)
		dish := fake.RandomStringElement(seedDishes)

		vegetarian := meatless[main]
		item := recommend.MenuItem{
			ID:              fmt.Sprintf("item-%03d", i+1),
			Name:            titleCase(fmt.Sprintf("%s %s %s", style, main, dish)),
			Description:     fmt.Sprintf("%s %s %s. %s", cuisine, style, dish, fake.Lorem().Sentence(8)),
			Category:        fake.RandomStringElement(seedCourses),
			IsVegetarian:    vegetarian,
			IsVegan:         vegetarian && fake.Bool(),
			IsGlutenFree:    dish != "pasta" && dish != "noodles" && dish != "dumplings" && fake.Bool(),
			IsSpicy:         style == "spicy" || cuisine == "thai" || cuisine == "korean",
			IsSpecial:       fake.IntBetween(0, 9) == 0,
			IsSeasonal:      fake.IntBetween(0, 6) == 0,
			AverageRating:   recommend.Float(fake.Float64(1, 2, 5)),
			OrderFrequency:  recommend.Float(float64(fake.IntBetween(0, 150))),
			PreparationTime: recommend.Float(float64(fake.IntBetween(5, 45))),
			PriceCategory:   seedPrices[fake.IntBetween(0, len(seedPrices)-1)],
			BasePrice:       fake.Float64(2, 5, 40),
			PeakHours:       seedPeakHours(fake),
		}
		items = append(items, item)
	}
	return items
}

// SeedDemoCatalog inserts n generated items when the catalog is empty and
// returns the number inserted.
func (db *DB) SeedDemoCatalog(ctx context.Context, n int, seed int64) (int, error) {
	count, err := db.CountMenuItems(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		db.logger.Debug().Int("existing", count).Msg("Catalog not empty, skipping demo seed")
		return 0, nil
	}

	items := GenerateMenuItems(n, seed)
	for i := range items {
		if err := db.UpsertMenuItem(ctx, items[i]); err != nil {
			return i, fmt.Errorf("failed to seed demo catalog: %w", err)
		}
	}

	db.logger.Info().Int("items", len(items)).Int64("seed", seed).Msg("Seeded demo catalog")
	return len(items), nil
}

func seedPeakHours(fake faker.Faker) []int {
	switch fake.IntBetween(0, 3) {
	case 0:
		return []int{11, 12, 13}
	case 1:
		return []int{18, 19, 20}
	case 2:
		return []int{7, 8, 9}
	default:
		return []int{}
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
