// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Scorer ranks a catalog against a user profile. It holds only immutable
// configuration and is safe for concurrent use.
type Scorer struct {
	config *Config
	logger zerolog.Logger
}

// NewScorer creates a scorer. A nil config selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(cfg *Config, logger zerolog.Logger) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Scorer{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the scorer configuration.
func (s *Scorer) Config() *Config {
	return s.config.Clone()
}

// candidate is an item that survived the score threshold.
type candidate struct {
	index int
	score float64
	sim   float64
}

// Score blends text similarity, rating and popularity for every item,
// applies the peak hour, special and seasonal bonuses in that order, drops
// items under the minimum score, and returns the best items sorted by
// descending score. Ties keep catalog order.
//
// An empty catalog fails with an *EmptyBatchError. An item that cannot be
// turned into features fails the whole call with a *ScoringError naming it.
// An empty result after filtering is not an error.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (s *Scorer) Score(items []MenuItem, profile UserProfile, now time.Time) ([]ScoredItem, error) {
	if len(items) == 0 {
		return nil, &EmptyBatchError{Operation: "score recommendations"}
	}

	docs := make([]string, len(items))
	for i := range items {
		doc, err := ItemText(items[i])
		if err != nil {
			return nil, &ScoringError{ItemID: items[i].ID, Err: err}
		}
		docs[i] = doc
	}

	numeric, err := Normalize(items, profile)
	if err != nil {
		return nil, fmt.Errorf("normalize features: %w", err)
	}

	vectorizer := NewVectorizer(s.config.Text.MaxFeatures)
	sims := vectorizer.Similarities(docs, UserText(profile))

	hour := now.Hour()
	candidates := make([]candidate, 0, len(items))
	for i := range items {
		score := s.blend(&items[i], sims[i], numeric.Raw[i], hour)
		if score < s.config.Limits.MinScore {
			continue
		}
		candidates = append(candidates, candidate{index: i, score: score, sim: sims[i]})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > s.config.Limits.MaxResults {
		candidates = candidates[:s.config.Limits.MaxResults]
	}

	results := make([]ScoredItem, len(candidates))
	for k, c := range candidates {
		results[k] = ScoredItem{
			Item:            items[c.index].Clone(),
			Score:           round3(c.score),
			SimilarityScore: round3(c.sim),
			Features:        numeric.Row(c.index),
		}
	}

	s.logger.Debug().
		Int("catalog_size", len(items)).
		Int("vocabulary", vectorizer.VocabularySize()).
		Int("returned", len(results)).
		Msg("scored recommendations")

	return results, nil
}

// blend computes the final score of one item from its similarity and raw
// numeric features.
func (s *Scorer) blend(item *MenuItem, sim float64, raw []float64, hour int) float64 {
	w := s.config.Weights
	b := s.config.Bonuses

	rating := raw[1]
	frequency := math.Min(raw[2]/w.FrequencyCap, 1.0)

	score := w.Similarity * sim
	score += w.Rating * (rating / 5.0)
	score += w.Frequency * frequency

	if item.IsPeakHour(hour) {
		score *= b.PeakHour
	}
	if item.IsSpecial {
		score *= b.Special
	}
	if item.IsSeasonal {
		score *= b.Seasonal
	}
	if score < 0 {
		score = 0
	}
	return score
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
