// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/database"
	"github.com/tomtom215/menuscore/internal/logging"
)

type rootOptions struct {
	dbPath   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Offline tooling for Menuscore",
		Long:          `menuctl generates synthetic pricing history, trains and queries the dynamic pricing model, and seeds the demo menu catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "DuckDB path (overrides DUCKDB_PATH)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newGenerateCmd(opts),
		newTrainCmd(opts),
		newQuoteCmd(opts),
		newSeedCmd(opts),
	)
	return root
}

// load reads the configuration, applies flag overrides and initializes
// logging.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: "console",
		Caller: false,
	})
	return cfg, nil
}

func openDB(cfg *config.Config) (*database.DB, error) {
	db, err := database.New(&cfg.Database, logging.WithComponent("database"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
