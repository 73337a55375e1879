// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(root *rootOptions) *cobra.Command {
	var (
		items int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed an empty catalog with generated menu items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("items") {
				items = cfg.Database.SeedItems
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Pricing.SyntheticSeed
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := db.SeedDemoCatalog(cmd.Context(), items, seed)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already populated, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d menu items into %s\n", n, cfg.Database.Path)
			return nil
		},
	}
	cmd.Flags().IntVar(&items, "items", 0, "number of items (default database.seed_items)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "faker seed (default pricing.synthetic_seed)")
	return cmd
}
