// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"fmt"
	"runtime"
)

// Config contains pricing model and policy settings.
type Config struct {
	// MinMultiplier is the lower bound of the safety band.
	// Default: 0.8.
	MinMultiplier float64 `json:"min_multiplier"`

	// MaxMultiplier is the upper bound of the safety band.
	// Default: 1.3.
	MaxMultiplier float64 `json:"max_multiplier"`

	// Forest contains the regressor hyperparameters.
	Forest ForestConfig `json:"forest"`
}

// ForestConfig contains random forest hyperparameters.
type ForestConfig struct {
	// NumTrees is the ensemble size.
	// Default: 100.
	NumTrees int `json:"num_trees"`

	// MaxDepth limits tree depth.
	// Default: 10.
	MaxDepth int `json:"max_depth"`

	// MinSamplesSplit is the smallest node that may be split.
	// Default: 5.
	MinSamplesSplit int `json:"min_samples_split"`

	// MinSamplesLeaf is the smallest allowed leaf.
	// Default: 2.
	MinSamplesLeaf int `json:"min_samples_leaf"`

	// MaxFeatures is the number of features tried per split. Zero means all.
	// Default: 0.
	MaxFeatures int `json:"max_features"`

	// Seed makes training reproducible. Tree i uses Seed+i.
	// Default: 42.
	Seed int64 `json:"seed"`

	// Workers is the number of trees trained concurrently.
	// Default: runtime.NumCPU().
	Workers int `json:"workers"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		MinMultiplier: 0.8,
		MaxMultiplier: 1.3,
		Forest:        DefaultForestConfig(),
	}
}

// DefaultForestConfig returns the default forest hyperparameters.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		NumTrees:        100,
		MaxDepth:        10,
		MinSamplesSplit: 5,
		MinSamplesLeaf:  2,
		MaxFeatures:     0,
		Seed:            42,
		Workers:         runtime.NumCPU(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MinMultiplier <= 0 {
		return fmt.Errorf("min_multiplier must be positive, got %f", c.MinMultiplier)
	}
	if c.MaxMultiplier < c.MinMultiplier {
		return fmt.Errorf("max_multiplier must be >= min_multiplier, got %f < %f", c.MaxMultiplier, c.MinMultiplier)
	}
	return c.Forest.Validate()
}

// Validate checks the forest hyperparameters.
func (c *ForestConfig) Validate() error {
	if c.NumTrees < 1 {
		return fmt.Errorf("forest.num_trees must be positive, got %d", c.NumTrees)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("forest.max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MinSamplesSplit < 2 {
		return fmt.Errorf("forest.min_samples_split must be at least 2, got %d", c.MinSamplesSplit)
	}
	if c.MinSamplesLeaf < 1 {
		return fmt.Errorf("forest.min_samples_leaf must be positive, got %d", c.MinSamplesLeaf)
	}
	if c.MaxFeatures < 0 {
		return fmt.Errorf("forest.max_features must be non-negative, got %d", c.MaxFeatures)
	}
	if c.Workers < 0 {
		return fmt.Errorf("forest.workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
