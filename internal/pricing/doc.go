// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

// Package pricing predicts dynamic price multipliers for menu items.
//
// A Predictor is trained on a table of historical samples (pricing context
// plus the multiplier that was charged). Training fits an Encoder, which
// standardizes the numeric columns and one-hot encodes weather, event type
// and item category, and a random Forest of regression trees. The fitted
// pair is published as an immutable TrainedState.
//
// Predictions validate the FeatureVector against the trained schema, clip
// the forest output to the configured band (0.8 to 1.3 by default) and round
// the final price to cents with shopspring/decimal.
//
// Generator produces reproducible synthetic history from a fixed set of
// pricing rules and is the default training source.
//
// # Thread Safety
//
// Predictions are lock-free and may run concurrently with training; they
// always observe one complete snapshot. Training runs are serialized.
package pricing
