// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/logging"
	"github.com/tomtom215/menuscore/internal/pricing"
)

type trainOptions struct {
	source string
	input  string
}

func (o *trainOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.source, "source", "", "sample source: synthetic, database or parquet (default pricing.source)")
	cmd.Flags().StringVar(&o.input, "in", "", "parquet file for --source parquet")
}

// resolveSource returns the sample source and a cleanup func.
func (o *trainOptions) resolveSource(cfg *config.Config) (pricing.SampleSource, func(), error) {
	source := o.source
	if source == "" {
		source = cfg.Pricing.Source
	}

	switch source {
	case "synthetic", "":
		return cfg.Pricing.SyntheticGenerator(), func() {}, nil
	case "parquet":
		if o.input == "" {
			return nil, nil, errors.New("--source parquet requires --in")
		}
		return parquetSource{path: o.input}, func() {}, nil
	case "database":
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown sample source %q", source)
	}
}

// trainFrom loads samples and fits a fresh predictor.
func trainFrom(ctx context.Context, cfg *config.Config, source pricing.SampleSource) (*pricing.Predictor, *pricing.TrainedState, error) {
	predictor, err := pricing.NewPredictor(cfg.Pricing.PredictorConfig(), logging.WithComponent("pricing"))
	if err != nil {
		return nil, nil, err
	}
	samples, err := source.LoadSamples(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load samples: %w", err)
	}
	state, err := predictor.Train(ctx, samples)
	if err != nil {
		return nil, nil, fmt.Errorf("train: %w", err)
	}
	return predictor, state, nil
}

func printState(w io.Writer, state *pricing.TrainedState) {
	fmt.Fprintf(w, "model version: %d\n", state.Version)
	fmt.Fprintf(w, "samples:       %d\n", state.SampleCount)
	fmt.Fprintf(w, "training R²:   %.4f\n", state.TrainingScore)
}

func newTrainCmd(root *rootOptions) *cobra.Command {
	opts := &trainOptions{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the pricing model and report its fit",
		Example: `  menuctl train
  menuctl train --source parquet --in history.parquet`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			source, cleanup, err := opts.resolveSource(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			_, state, err := trainFrom(cmd.Context(), cfg, source)
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}
