// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"fmt"
	"math"
)

// Config contains the business tuning of the recommendation scorer.
// None of these values are learned; they change independently of the algorithm.
type Config struct {
	// Weights defines how text similarity, rating and popularity blend.
	Weights BlendWeights `json:"weights"`

	// Bonuses are multiplicative boosts applied after blending.
	Bonuses BonusMultipliers `json:"bonuses"`

	// Limits contains the post-processing filter and cap.
	Limits LimitsConfig `json:"limits"`

	// Text contains vectorizer parameters.
	Text TextConfig `json:"text"`
}

// BlendWeights are the linear weights of the base score.
type BlendWeights struct {
	// Similarity weights the TF-IDF cosine similarity.
	// Default: 0.6.
	Similarity float64 `json:"similarity"`

	// Rating weights the average rating divided by 5.
	// Default: 0.2.
	Rating float64 `json:"rating"`

	// Frequency weights min(order_frequency/FrequencyCap, 1).
	// Default: 0.1.
	Frequency float64 `json:"frequency"`

	// FrequencyCap is the order count at which the popularity term saturates.
	// Default: 100.
	FrequencyCap float64 `json:"frequency_cap"`
}

// BonusMultipliers are applied in order: peak hour, special, seasonal.
type BonusMultipliers struct {
	// PeakHour applies when the current hour is one of the item's peak hours.
	// Default: 1.2.
	PeakHour float64 `json:"peak_hour"`

	// Special applies to items flagged as specials.
	// Default: 1.1.
	Special float64 `json:"special"`

	// Seasonal applies to seasonal items.
	// Default: 1.15.
	Seasonal float64 `json:"seasonal"`
}

// LimitsConfig bounds the ranked output.
type LimitsConfig struct {
	// MinScore drops items scoring strictly below it.
	// Default: 0.1.
	MinScore float64 `json:"min_score"`

	// MaxResults caps the number of returned items.
	// Default: 10.
	MaxResults int `json:"max_results"`
}

// TextConfig holds vectorizer parameters.
type TextConfig struct {
	// MaxFeatures caps the per-request vocabulary.
	// Default: 5000.
	MaxFeatures int `json:"max_features"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: BlendWeights{
			Similarity:   0.6,
			Rating:       0.2,
			Frequency:    0.1,
			FrequencyCap: 100,
		},
		Bonuses: BonusMultipliers{
			PeakHour: 1.2,
			Special:  1.1,
			Seasonal: 1.15,
		},
		Limits: LimitsConfig{
			MinScore:   0.1,
			MaxResults: 10,
		},
		Text: TextConfig{
			MaxFeatures: DefaultMaxFeatures,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := nonNegative("weights.similarity", c.Weights.Similarity); err != nil {
		return err
	}
	if err := nonNegative("weights.rating", c.Weights.Rating); err != nil {
		return err
	}
	if err := nonNegative("weights.frequency", c.Weights.Frequency); err != nil {
		return err
	}
	if c.Weights.FrequencyCap <= 0 || math.IsNaN(c.Weights.FrequencyCap) {
		return fmt.Errorf("weights.frequency_cap must be positive, got %f", c.Weights.FrequencyCap)
	}

	if err := nonNegative("bonuses.peak_hour", c.Bonuses.PeakHour); err != nil {
		return err
	}
	if err := nonNegative("bonuses.special", c.Bonuses.Special); err != nil {
		return err
	}
	if err := nonNegative("bonuses.seasonal", c.Bonuses.Seasonal); err != nil {
		return err
	}

	if err := nonNegative("limits.min_score", c.Limits.MinScore); err != nil {
		return err
	}
	if c.Limits.MaxResults < 1 {
		return fmt.Errorf("limits.max_results must be positive, got %d", c.Limits.MaxResults)
	}
	if c.Text.MaxFeatures < 1 {
		return fmt.Errorf("text.max_features must be positive, got %d", c.Text.MaxFeatures)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

func nonNegative(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a non-negative finite number, got %f", field, v)
	}
	return nil
}
