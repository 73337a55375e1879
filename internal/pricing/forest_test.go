// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"context"
	"math"
	"math/rand"
	"testing"
)

func stepData(n int) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(1))
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		a := rng.Float64()
		b := rng.Float64()
		x[i] = []float64{a, b}
		if a > 0.5 {
			y[i] = 2
		} else {
			y[i] = 1
		}
	}
	return x, y
}

func TestFitForest_LearnsStep(t *testing.T) {
	t.Parallel()

	cfg := DefaultForestConfig()
	cfg.NumTrees = 10
	cfg.Workers = 2
	x, y := stepData(300)

	f, err := FitForest(context.Background(), cfg, x, y)
	if err != nil {
		t.Fatalf("FitForest() error = %v", err)
	}
	if f.Size() != 10 {
		t.Errorf("Size() = %d, want 10", f.Size())
	}
	if got := f.Predict([]float64{0.9, 0.1}); math.Abs(got-2) > 0.1 {
		t.Errorf("Predict(high) = %f, want about 2", got)
	}
	if got := f.Predict([]float64{0.1, 0.9}); math.Abs(got-1) > 0.1 {
		t.Errorf("Predict(low) = %f, want about 1", got)
	}
	if r2 := f.R2(x, y); r2 < 0.9 {
		t.Errorf("R2 = %f, want >= 0.9", r2)
	}
}

func TestFitForest_DeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()

	x, y := stepData(200)
	probe := [][]float64{{0.2, 0.3}, {0.49, 0.7}, {0.51, 0.1}, {0.8, 0.8}}

	var first []float64
	for _, workers := range []int{1, 4} {
		cfg := DefaultForestConfig()
		cfg.NumTrees = 6
		cfg.MaxFeatures = 1
		cfg.Workers = workers

		f, err := FitForest(context.Background(), cfg, x, y)
		if err != nil {
			t.Fatalf("FitForest(workers=%d) error = %v", workers, err)
		}
		preds := make([]float64, len(probe))
		for i, p := range probe {
			preds[i] = f.Predict(p)
		}
		if first == nil {
			first = preds
			continue
		}
		for i := range preds {
			if preds[i] != first[i] {
				t.Errorf("probe %d: workers=%d predicted %f, workers=1 predicted %f", i, workers, preds[i], first[i])
			}
		}
	}
}

func TestFitForest_RespectsMinSamplesLeaf(t *testing.T) {
	t.Parallel()

	cfg := DefaultForestConfig()
	cfg.NumTrees = 1
	cfg.MinSamplesSplit = 2
	cfg.MinSamplesLeaf = 3
	x := [][]float64{{1}, {2}, {3}, {4}, {5}}
	y := []float64{1, 1, 1, 1, 9}

	f, err := FitForest(context.Background(), cfg, x, y)
	if err != nil {
		t.Fatalf("FitForest() error = %v", err)
	}
	// With five samples and leaves of at least three, no split is possible.
	if n := len(f.trees[0].nodes); n != 1 {
		t.Errorf("tree has %d nodes, want a single leaf", n)
	}
}

func TestFitForest_Errors(t *testing.T) {
	t.Parallel()

	cfg := DefaultForestConfig()
	if _, err := FitForest(context.Background(), cfg, nil, nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := FitForest(context.Background(), cfg, [][]float64{{1}}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	bad := cfg
	bad.NumTrees = 0
	if _, err := FitForest(context.Background(), bad, [][]float64{{1}}, []float64{1}); err == nil {
		t.Error("expected error for invalid config")
	}
}
