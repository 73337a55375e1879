// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Predictor predicts bounded price multipliers from a trained forest.
//
// Predictions read the current TrainedState through an atomic pointer and
// never block on training. Training builds a complete new snapshot and
// publishes it with a single store.
type Predictor struct {
	config *Config
	schema Schema
	logger zerolog.Logger

	state   atomic.Pointer[TrainedState]
	trainMu sync.Mutex
	version atomic.Int64
}

// NewPredictor creates an untrained predictor. A nil config selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPredictor(cfg *Config, logger zerolog.Logger) (*Predictor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Predictor{
		config: cfg.Clone(),
		schema: DefaultSchema(),
		logger: logger.With().Str("component", "pricing").Logger(),
	}, nil
}

// Bounds returns the multiplier safety band.
func (p *Predictor) Bounds() (minMultiplier, maxMultiplier float64) {
	return p.config.MinMultiplier, p.config.MaxMultiplier
}

// State returns the current snapshot, or nil before the first training.
func (p *Predictor) State() *TrainedState {
	return p.state.Load()
}

// IsTrained reports whether a snapshot has been published.
func (p *Predictor) IsTrained() bool {
	return p.state.Load() != nil
}

// Train fits a new snapshot on samples and publishes it. The previous
// snapshot keeps serving until the swap. Only one training runs at a time;
// a concurrent call returns ErrTrainingInProgress.
func (p *Predictor) Train(ctx context.Context, samples []Sample) (*TrainedState, error) {
	if !p.trainMu.TryLock() {
		return nil, ErrTrainingInProgress
	}
	defer p.trainMu.Unlock()

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	start := time.Now()
	p.logger.Info().Int("samples", len(samples)).Msg("training pricing model")

	rows := make([]FeatureVector, len(samples))
	targets := make([]float64, len(samples))
	for i := range samples {
		rows[i] = samples[i].Features()
		targets[i] = samples[i].PriceMultiplier
	}

	encoder, err := FitEncoder(p.schema, rows)
	if err != nil {
		return nil, fmt.Errorf("fit encoder: %w", err)
	}

	x := make([][]float64, len(rows))
	for i, fv := range rows {
		x[i], err = encoder.Transform(fv)
		if err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i, err)
		}
	}

	forest, err := FitForest(ctx, p.config.Forest, x, targets)
	if err != nil {
		if errCanceled(err) {
			p.logger.Warn().Err(err).Msg("pricing model training canceled")
		}
		return nil, err
	}

	state := &TrainedState{
		encoder:       encoder,
		forest:        forest,
		Schema:        p.schema,
		Version:       p.version.Add(1),
		TrainedAt:     time.Now(),
		SampleCount:   len(samples),
		TrainingScore: forest.R2(x, targets),
	}
	p.state.Store(state)

	p.logger.Info().
		Int64("version", state.Version).
		Int("samples", state.SampleCount).
		Float64("r2", state.TrainingScore).
		Dur("duration", time.Since(start)).
		Msg("pricing model trained")

	return state, nil
}

// PredictMultiplier returns the model's multiplier for fv, clipped to the
// safety band.
func (p *Predictor) PredictMultiplier(fv FeatureVector) (float64, error) {
	m, _, err := p.predict(fv)
	return m, err
}

// PredictPrice prices basePrice under fv. The price is rounded half away
// from zero to cents; when that would leave the band it is rounded toward it.
func (p *Predictor) PredictPrice(basePrice float64, fv FeatureVector) (Quote, error) {
	if basePrice <= 0 || math.IsNaN(basePrice) || math.IsInf(basePrice, 0) {
		return Quote{}, &InvalidPriceError{BasePrice: basePrice}
	}

	multiplier, version, err := p.predict(fv)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		BasePrice:    basePrice,
		Multiplier:   multiplier,
		Price:        ApplyMultiplier(basePrice, multiplier, p.config.MinMultiplier, p.config.MaxMultiplier),
		ModelVersion: version,
	}, nil
}

func (p *Predictor) predict(fv FeatureVector) (float64, int64, error) {
	state := p.state.Load()
	if state == nil {
		return 0, 0, ErrUntrainedModel
	}
	raw, err := state.predict(fv)
	if err != nil {
		return 0, 0, err
	}
	return Clip(raw, p.config.MinMultiplier, p.config.MaxMultiplier), state.Version, nil
}

// Clip bounds v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApplyMultiplier returns basePrice*multiplier rounded to cents, staying
// within [basePrice*lo, basePrice*hi].
func ApplyMultiplier(basePrice, multiplier, lo, hi float64) float64 {
	base := decimal.NewFromFloat(basePrice)
	raw := base.Mul(decimal.NewFromFloat(multiplier))
	price := raw.Round(2)

	floor := base.Mul(decimal.NewFromFloat(lo))
	ceil := base.Mul(decimal.NewFromFloat(hi))
	switch {
	case price.GreaterThan(ceil):
		price = raw.RoundFloor(2)
	case price.LessThan(floor):
		price = raw.RoundCeil(2)
	}

	f, _ := price.Float64()
	return f
}
