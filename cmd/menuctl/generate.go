// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	samples int
	seed    int64
	out     string
	toDB    bool
	replace bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic pricing history",
		Long: `Draws a reproducible pricing history from the synthetic generator and
stores it in the pricing_samples table, a parquet file, or both.`,
		Example: `  menuctl generate --samples 10000 --to-db
  menuctl generate --seed 7 --out history.parquet`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.toDB && opts.out == "" {
				return errors.New("nothing to do: pass --to-db and/or --out")
			}
			cfg, err := root.load()
			if err != nil {
				return err
			}

			gen := cfg.Pricing.SyntheticGenerator()
			if cmd.Flags().Changed("samples") {
				gen.Samples = opts.samples
			}
			if cmd.Flags().Changed("seed") {
				gen.Seed = opts.seed
			}
			if gen.Samples <= 0 {
				return fmt.Errorf("samples must be positive, got %d", gen.Samples)
			}
			samples := gen.Generate()

			if opts.out != "" {
				if err := writeParquet(opts.out, samples); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d samples to %s\n", len(samples), opts.out)
			}

			if opts.toDB {
				db, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer db.Close()

				ctx := cmd.Context()
				if opts.replace {
					if err := db.DeleteSamples(ctx); err != nil {
						return err
					}
				}
				if err := db.InsertSamples(ctx, samples); err != nil {
					return err
				}
				total, err := db.CountSamples(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "inserted %d samples into %s (%d stored)\n", len(samples), cfg.Database.Path, total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.samples, "samples", 0, "number of samples (default pricing.synthetic_samples)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "generator seed (default pricing.synthetic_seed)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write samples to this parquet file")
	cmd.Flags().BoolVar(&opts.toDB, "to-db", false, "insert samples into the pricing_samples table")
	cmd.Flags().BoolVar(&opts.replace, "replace", false, "delete stored samples before inserting")
	return cmd
}
