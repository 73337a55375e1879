// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/menuscore/internal/pricing"
)

func TestSamples_InsertLoadCountDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	gen := pricing.NewGenerator(nil)
	gen.Samples = 200
	samples := gen.Generate()

	if err := db.InsertSamples(ctx, samples); err != nil {
		t.Fatalf("InsertSamples() error = %v", err)
	}

	n, err := db.CountSamples(ctx)
	if err != nil {
		t.Fatalf("CountSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Errorf("CountSamples() = %d, want %d", n, len(samples))
	}

	loaded, err := db.LoadSamples(ctx)
	if err != nil {
		t.Fatalf("LoadSamples() error = %v", err)
	}
	if len(loaded) != len(samples) {
		t.Fatalf("LoadSamples() returned %d rows, want %d", len(loaded), len(samples))
	}

	var wantSum, gotSum float64
	byKey := make(map[pricing.Sample]int)
	for i := range samples {
		wantSum += samples[i].PriceMultiplier
		byKey[samples[i]]++
	}
	for i := range loaded {
		gotSum += loaded[i].PriceMultiplier
		byKey[loaded[i]]--
	}
	if math.Abs(wantSum-gotSum) > 1e-9 {
		t.Errorf("multiplier sum = %v, want %v", gotSum, wantSum)
	}
	for s, c := range byKey {
		if c != 0 {
			t.Errorf("sample %+v count mismatch %d", s, c)
			break
		}
	}

	if err := db.DeleteSamples(ctx); err != nil {
		t.Fatalf("DeleteSamples() error = %v", err)
	}
	if n, _ := db.CountSamples(ctx); n != 0 {
		t.Errorf("CountSamples() after delete = %d, want 0", n)
	}
}

func TestInsertSamples_Empty(t *testing.T) {
	db := setupTestDB(t)

	if err := db.InsertSamples(testContext(t), nil); err != nil {
		t.Errorf("InsertSamples(nil) error = %v", err)
	}
}

func TestLoadSamples_TrainsPredictor(t *testing.T) {
	db := setupTestDB(t)
	ctx := testContext(t)

	gen := pricing.NewGenerator(nil)
	gen.Samples = 300
	if err := db.InsertSamples(ctx, gen.Generate()); err != nil {
		t.Fatalf("InsertSamples() error = %v", err)
	}

	cfg := pricing.DefaultConfig()
	cfg.Forest.NumTrees = 5
	cfg.Forest.Workers = 1
	p, err := pricing.NewPredictor(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}

	var src pricing.SampleSource = db
	loaded, err := src.LoadSamples(ctx)
	if err != nil {
		t.Fatalf("LoadSamples() error = %v", err)
	}
	if _, err := p.Train(ctx, loaded); err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	if !p.IsTrained() {
		t.Error("predictor should be trained")
	}
}
