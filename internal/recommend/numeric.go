// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"gonum.org/v1/gonum/stat"
)

// Numeric feature names, in column order.
const (
	FeaturePriceMatch      = "price_match"
	FeatureRating          = "rating_score"
	FeatureOrderFrequency  = "order_frequency"
	FeaturePreparationTime = "preparation_time"
	FeatureIsSpecial       = "is_special"
)

// Defaults substituted for absent item attributes.
const (
	DefaultRating          = 3.0
	DefaultOrderFrequency  = 0.0
	DefaultPreparationTime = 30.0
)

// NumericFeatureNames lists the numeric feature columns in order.
var NumericFeatureNames = []string{
	FeaturePriceMatch,
	FeatureRating,
	FeatureOrderFrequency,
	FeaturePreparationTime,
	FeatureIsSpecial,
}

// NumericBatch holds the numeric features of one batch of items, both raw
// (with defaults applied) and standardized to zero mean and unit variance.
type NumericBatch struct {
	// Raw is indexed [item][feature].
	Raw [][]float64

	// Standardized is indexed [item][feature].
	Standardized [][]float64

	// Mean and Scale are the per-feature standardization parameters.
	Mean  []float64
	Scale []float64
}

// Row returns the standardized features of item i keyed by feature name.
func (b *NumericBatch) Row(i int) map[string]float64 {
	out := make(map[string]float64, len(NumericFeatureNames))
	for j, name := range NumericFeatureNames {
		out[name] = b.Standardized[i][j]
	}
	return out
}

// RawFeatures returns the unstandardized features of a single item.
//
//nolint:gocritic // hugeParam: values passed by value for immutability
func RawFeatures(item MenuItem, profile UserProfile) []float64 {
	priceMatch := profile.PriceRange.Rank() - item.PriceCategory.Rank()
	if priceMatch < 0 {
		priceMatch = -priceMatch
	}
	special := 0.0
	if item.IsSpecial {
		special = 1
	}
	return []float64{
		float64(priceMatch),
		valueOr(item.AverageRating, DefaultRating),
		valueOr(item.OrderFrequency, DefaultOrderFrequency),
		valueOr(item.PreparationTime, DefaultPreparationTime),
		special,
	}
}

// Normalize computes the numeric features of items and standardizes each
// column with the batch mean and population standard deviation. A column
// with zero deviation is only centered. The parameters are fit to this batch
// alone and never retained.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func Normalize(items []MenuItem, profile UserProfile) (*NumericBatch, error) {
	if len(items) == 0 {
		return nil, &EmptyBatchError{Operation: "normalize numeric features"}
	}

	nFeatures := len(NumericFeatureNames)
	batch := &NumericBatch{
		Raw:          make([][]float64, len(items)),
		Standardized: make([][]float64, len(items)),
		Mean:         make([]float64, nFeatures),
		Scale:        make([]float64, nFeatures),
	}
	for i := range items {
		batch.Raw[i] = RawFeatures(items[i], profile)
	}

	col := make([]float64, len(items))
	for j := 0; j < nFeatures; j++ {
		for i := range items {
			col[i] = batch.Raw[i][j]
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		batch.Mean[j] = mean
		batch.Scale[j] = std
	}

	for i := range items {
		row := make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			row[j] = (batch.Raw[i][j] - batch.Mean[j]) / batch.Scale[j]
		}
		batch.Standardized[i] = row
	}

	return batch, nil
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
