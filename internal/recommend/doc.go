// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

// Package recommend ranks menu items for a customer.
//
// # Architecture
//
// Scoring runs in four stages over one batch (the current catalog plus one
// user profile):
//
//   - Text: ItemText and UserText flatten items and profiles into documents.
//   - Similarity: a request-scoped Vectorizer embeds the N+1 documents into a
//     TF-IDF space of unigrams and bigrams and computes cosine similarity.
//   - Numeric: Normalize derives price match, rating, order frequency,
//     preparation time and special flag, standardized across the batch.
//   - Blend: Scorer combines similarity, rating and popularity with configured
//     weights, applies peak hour, special and seasonal bonuses, filters,
//     sorts and truncates.
//
// # Determinism
//
// The same catalog, profile and time always produce the same output. The
// vocabulary is ordered by descending document frequency with ties broken by
// first appearance, and sorting is stable on catalog order.
//
// # Usage
//
//	scorer, err := recommend.NewScorer(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	results, err := scorer.Score(items, profile, time.Now())
//
// # Thread Safety
//
// Scorer and Service are safe for concurrent use. Nothing is cached between
// calls; every call fits its own vectorizer and standardization parameters.
//
// This package has no dependencies on other internal packages. Storage is
// reached through the CatalogReader and ProfileReader interfaces.
package recommend
