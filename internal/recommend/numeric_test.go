// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestRawFeatures_Defaults(t *testing.T) {
	t.Parallel()

	got := RawFeatures(MenuItem{Name: "Soup"}, UserProfile{})
	want := []float64{0, DefaultRating, DefaultOrderFrequency, DefaultPreparationTime, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RawFeatures() = %v, want %v", got, want)
	}
}

func TestRawFeatures_PriceMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		item    PriceCategory
		profile PriceCategory
		want    float64
	}{
		{PriceLow, PriceLow, 0},
		{PriceLow, PriceHigh, 2},
		{PriceHigh, PriceLow, 2},
		{PriceMedium, PriceHigh, 1},
		{"", PriceLow, 1},
		{"luxury", PriceMedium, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.item)+"_"+string(tt.profile), func(t *testing.T) {
			t.Parallel()
			got := RawFeatures(MenuItem{Name: "x", PriceCategory: tt.item}, UserProfile{PriceRange: tt.profile})
			if got[0] != tt.want {
				t.Errorf("price_match = %f, want %f", got[0], tt.want)
			}
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	_, err := Normalize(nil, UserProfile{})
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestNormalize_ZeroMeanUnitVariance(t *testing.T) {
	t.Parallel()

	items := []MenuItem{
		{Name: "a", AverageRating: Float(2), OrderFrequency: Float(10), PreparationTime: Float(10), IsSpecial: true},
		{Name: "b", AverageRating: Float(4), OrderFrequency: Float(20), PreparationTime: Float(20)},
		{Name: "c", AverageRating: Float(5), OrderFrequency: Float(90), PreparationTime: Float(45)},
	}
	batch, err := Normalize(items, UserProfile{PriceRange: PriceMedium})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	for j, name := range NumericFeatureNames {
		var sum, sq float64
		for i := range items {
			sum += batch.Standardized[i][j]
		}
		mean := sum / float64(len(items))
		for i := range items {
			d := batch.Standardized[i][j] - mean
			sq += d * d
		}
		variance := sq / float64(len(items))

		if math.Abs(mean) > 1e-9 {
			t.Errorf("%s mean = %f, want 0", name, mean)
		}
		// price_match is constant here and only centered.
		if name == FeaturePriceMatch {
			if variance != 0 {
				t.Errorf("%s variance = %f, want 0", name, variance)
			}
			continue
		}
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("%s variance = %f, want 1", name, variance)
		}
	}
}

func TestNormalize_SingleItemIsCentered(t *testing.T) {
	t.Parallel()

	batch, err := Normalize([]MenuItem{{Name: "solo", AverageRating: Float(4.5)}}, UserProfile{})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for j, v := range batch.Standardized[0] {
		if v != 0 {
			t.Errorf("feature %s = %f, want 0", NumericFeatureNames[j], v)
		}
	}
	row := batch.Row(0)
	if len(row) != len(NumericFeatureNames) {
		t.Errorf("Row() has %d keys, want %d", len(row), len(NumericFeatureNames))
	}
}
