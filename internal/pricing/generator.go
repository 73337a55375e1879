// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"context"
	"math/rand"
)

// Generator defaults.
const (
	DefaultGeneratorSeed    = 42
	DefaultGeneratorSamples = 10000
	noiseStdDev             = 0.05
)

// Categorical levels produced by the generator.
var (
	WeatherConditions = []string{"sunny", "rainy", "cloudy"}
	EventTypes        = []string{"none", "sports", "concert", "festival"}
	Categories        = []string{"appetizer", "main", "dessert", "beverage"}
)

// Generator produces synthetic pricing history with a known ground truth.
// The same Seed and Samples always produce the same table.
type Generator struct {
	Seed    int64
	Samples int

	MinMultiplier float64
	MaxMultiplier float64
}

// NewGenerator returns a generator with the default seed and size, clipping
// to the band of cfg (DefaultConfig when nil).
func NewGenerator(cfg *Config) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Generator{
		Seed:          DefaultGeneratorSeed,
		Samples:       DefaultGeneratorSamples,
		MinMultiplier: cfg.MinMultiplier,
		MaxMultiplier: cfg.MaxMultiplier,
	}
}

// LoadSamples implements SampleSource.
func (g *Generator) LoadSamples(ctx context.Context) ([]Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Generate draws g.Samples samples.
func (g *Generator) Generate() []Sample {
	rng := rand.New(rand.NewSource(g.Seed)) //nolint:gosec // reproducible synthetic data

	out := make([]Sample, g.Samples)
	for i := range out {
		s := Sample{
			BasePrice:            5 + rng.Float64()*45,
			Hour:                 rng.Int63n(24),
			DayOfWeek:            rng.Int63n(7),
			IsWeekend:            rng.Int63n(2),
			IsHoliday:            rng.Int63n(2),
			CurrentDemand:        rng.Int63n(100),
			CompetitorPriceRatio: 0.8 + rng.Float64()*0.4,
			WeatherCondition:     WeatherConditions[rng.Intn(len(WeatherConditions))],
			EventType:            EventTypes[rng.Intn(len(EventTypes))],
			HistoricalSales:      rng.Int63n(1000),
			InventoryLevel:       rng.Int63n(100),
			Category:             Categories[rng.Intn(len(Categories))],
			PreparationTime:      5 + rng.Int63n(55),
		}
		m := RuleMultiplier(&s) + rng.NormFloat64()*noiseStdDev
		s.PriceMultiplier = Clip(m, g.MinMultiplier, g.MaxMultiplier)
		out[i] = s
	}
	return out
}

// RuleMultiplier applies the pricing rules the synthetic history is built
// from, without noise or clipping.
func RuleMultiplier(s *Sample) float64 {
	m := 1.0
	if (s.Hour >= 11 && s.Hour <= 13) || (s.Hour >= 18 && s.Hour <= 20) {
		m *= 1.1
	}
	if s.IsWeekend == 1 {
		m *= 1.05
	}
	if s.IsHoliday == 1 {
		m *= 1.15
	}
	m *= 1 + 0.2*float64(s.CurrentDemand)/100
	if s.WeatherCondition == "rainy" {
		m *= 0.95
	}
	if s.EventType != "none" {
		m *= 1.1
	}
	switch {
	case s.InventoryLevel < 20:
		m *= 1.1
	case s.InventoryLevel > 80:
		m *= 0.9
	}
	return m
}
