// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package config

import (
	"github.com/tomtom215/menuscore/internal/pricing"
	"github.com/tomtom215/menuscore/internal/recommend"
)

// ScorerConfig returns the recommendation scorer tuning described by r.
func (r *RecommendConfig) ScorerConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Weights.Similarity = r.SimilarityWeight
	cfg.Weights.Rating = r.RatingWeight
	cfg.Weights.Frequency = r.FrequencyWeight
	cfg.Weights.FrequencyCap = r.FrequencyCap
	cfg.Bonuses.PeakHour = r.PeakHourBonus
	cfg.Bonuses.Special = r.SpecialBonus
	cfg.Bonuses.Seasonal = r.SeasonalBonus
	cfg.Limits.MinScore = r.MinScore
	cfg.Limits.MaxResults = r.MaxResults
	cfg.Text.MaxFeatures = r.MaxFeatures
	return cfg
}

// PredictorConfig returns the pricing model configuration described by p.
func (p *PricingConfig) PredictorConfig() *pricing.Config {
	cfg := pricing.DefaultConfig()
	cfg.MinMultiplier = p.MinMultiplier
	cfg.MaxMultiplier = p.MaxMultiplier
	cfg.Forest.NumTrees = p.NumTrees
	cfg.Forest.MaxDepth = p.MaxDepth
	cfg.Forest.MinSamplesSplit = p.MinSamplesSplit
	cfg.Forest.MinSamplesLeaf = p.MinSamplesLeaf
	cfg.Forest.MaxFeatures = p.MaxFeatures
	cfg.Forest.Seed = p.Seed
	if p.Workers > 0 {
		cfg.Forest.Workers = p.Workers
	}
	return cfg
}

// SyntheticGenerator returns the synthetic history generator described by p.
func (p *PricingConfig) SyntheticGenerator() *pricing.Generator {
	gen := pricing.NewGenerator(p.PredictorConfig())
	gen.Samples = p.SyntheticSamples
	gen.Seed = p.SyntheticSeed
	return gen
}
