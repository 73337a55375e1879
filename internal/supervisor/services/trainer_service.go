// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menuscore/internal/metrics"
	"github.com/tomtom215/menuscore/internal/pricing"
)

// ModelTrainer fits the pricing model. *pricing.Predictor satisfies it.
type ModelTrainer interface {
	Train(ctx context.Context, samples []pricing.Sample) (*pricing.TrainedState, error)
}

// TrainerServiceConfig holds the training schedule.
type TrainerServiceConfig struct {
	// TrainOnStartup trains as soon as the service starts.
	TrainOnStartup bool

	// TrainInterval retrains periodically. Zero disables retraining.
	TrainInterval time.Duration

	// TrainTimeout bounds one run, sample loading included.
	// Default: 30m
	TrainTimeout time.Duration
}

// TrainerService owns the pricing model's training lifecycle.
type TrainerService struct {
	trainer ModelTrainer
	source  pricing.SampleSource
	config  TrainerServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewTrainerService creates a trainer that reads samples from source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTrainerService(trainer ModelTrainer, source pricing.SampleSource, cfg TrainerServiceConfig, logger zerolog.Logger) *TrainerService {
	if cfg.TrainTimeout <= 0 {
		cfg.TrainTimeout = 30 * time.Minute
	}
	return &TrainerService{
		trainer: trainer,
		source:  source,
		config:  cfg,
		logger:  logger.With().Str("service", "pricing-trainer").Logger(),
		name:    "pricing-trainer",
	}
}

// Serve implements suture.Service. Training failures are logged and the
// current model stays in place; only ctx cancellation ends the service.
func (s *TrainerService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("train_on_startup", s.config.TrainOnStartup).
		Dur("train_interval", s.config.TrainInterval).
		Msg("pricing trainer starting")

	if s.config.TrainOnStartup {
		if err := s.TrainOnce(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial training failed")
		}
	}

	if s.config.TrainInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.TrainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("pricing trainer shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := s.TrainOnce(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled training failed")
			}
		}
	}
}

// TrainOnce loads the samples and trains one model.
func (s *TrainerService) TrainOnce(ctx context.Context) error {
	trainCtx, cancel := context.WithTimeout(ctx, s.config.TrainTimeout)
	defer cancel()

	start := time.Now()
	samples, err := s.source.LoadSamples(trainCtx)
	if err != nil {
		metrics.RecordTraining(time.Since(start), 0, 0, 0, err)
		return fmt.Errorf("load samples: %w", err)
	}

	state, err := s.trainer.Train(trainCtx, samples)
	if err != nil {
		metrics.RecordTraining(time.Since(start), 0, len(samples), 0, err)
		return fmt.Errorf("train: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordTraining(elapsed, state.Version, state.SampleCount, state.TrainingScore, nil)
	s.logger.Debug().
		Int64("version", state.Version).
		Int("samples", state.SampleCount).
		Float64("r2", state.TrainingScore).
		Dur("duration", elapsed).
		Msg("training run complete")
	return nil
}

// String implements fmt.Stringer.
func (s *TrainerService) String() string {
	return s.name
}
