// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"fmt"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/logging"
	"github.com/tomtom215/menuscore/internal/pricing"
	"github.com/tomtom215/menuscore/internal/supervisor"
	"github.com/tomtom215/menuscore/internal/supervisor/services"
)

// sampleSource picks where training samples come from.
func sampleSource(cfg *config.PricingConfig, db pricing.SampleSource) (pricing.SampleSource, error) {
	switch cfg.Source {
	case "synthetic", "":
		return cfg.SyntheticGenerator(), nil
	case "database":
		if db == nil {
			return nil, fmt.Errorf("pricing source %q requires a database", cfg.Source)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown pricing source %q", cfg.Source)
	}
}

// initPricing creates the predictor and registers its trainer in the model
// layer. The predictor answers MODEL_NOT_READY until the first run completes.
func initPricing(cfg *config.Config, db pricing.SampleSource, tree *supervisor.SupervisorTree) (*pricing.Predictor, error) {
	logger := logging.WithComponent("pricing")

	predictor, err := pricing.NewPredictor(cfg.Pricing.PredictorConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create predictor: %w", err)
	}

	source, err := sampleSource(&cfg.Pricing, db)
	if err != nil {
		return nil, err
	}

	trainer := services.NewTrainerService(predictor, source, services.TrainerServiceConfig{
		TrainOnStartup: cfg.Pricing.TrainOnStartup,
		TrainInterval:  cfg.Pricing.TrainInterval,
		TrainTimeout:   cfg.Pricing.TrainTimeout,
	}, logger)
	tree.AddModelService(trainer)

	logger.Info().
		Str("source", cfg.Pricing.Source).
		Bool("train_on_startup", cfg.Pricing.TrainOnStartup).
		Dur("train_interval", cfg.Pricing.TrainInterval).
		Int("num_trees", cfg.Pricing.NumTrees).
		Msg("Pricing trainer added to supervisor tree")

	return predictor, nil
}
