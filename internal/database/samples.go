// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/menuscore/internal/pricing"
)

const sampleColumns = `base_price, hour, day_of_week, is_weekend, is_holiday, current_demand,
	competitor_price_ratio, weather_condition, event_type, historical_sales,
	inventory_level, category, preparation_time, price_multiplier`

// InsertSamples appends pricing samples in a single transaction.
func (db *DB) InsertSamples(ctx context.Context, samples []pricing.Sample) (err error) {
	start := time.Now()
	defer func() { observe("INSERT", "pricing_samples", start, err) }()

	if len(samples) == 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				db.logger.Warn().Err(rbErr).Msg("Failed to roll back sample insert")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pricing_samples (`+sampleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer closeWithLog(stmt, "statement")

	for i := range samples {
		s := &samples[i]
		_, err = stmt.ExecContext(ctx,
			s.BasePrice, s.Hour, s.DayOfWeek, s.IsWeekend, s.IsHoliday, s.CurrentDemand,
			s.CompetitorPriceRatio, s.WeatherCondition, s.EventType, s.HistoricalSales,
			s.InventoryLevel, s.Category, s.PreparationTime, s.PriceMultiplier)
		if err != nil {
			return fmt.Errorf("failed to insert sample %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit samples: %w", err)
	}
	db.logger.Debug().Int("count", len(samples)).Msg("Inserted pricing samples")
	return nil
}

// LoadSamples implements pricing.SampleSource over the pricing_samples table.
func (db *DB) LoadSamples(ctx context.Context) (out []pricing.Sample, err error) {
	start := time.Now()
	defer func() { observe("SELECT", "pricing_samples", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT `+sampleColumns+` FROM pricing_samples`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing samples: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = make([]pricing.Sample, 0)
	for rows.Next() {
		var s pricing.Sample
		err = rows.Scan(
			&s.BasePrice, &s.Hour, &s.DayOfWeek, &s.IsWeekend, &s.IsHoliday, &s.CurrentDemand,
			&s.CompetitorPriceRatio, &s.WeatherCondition, &s.EventType, &s.HistoricalSales,
			&s.InventoryLevel, &s.Category, &s.PreparationTime, &s.PriceMultiplier,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing sample: %w", err)
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pricing samples: %w", err)
	}
	return out, nil
}

// CountSamples returns the number of stored pricing samples.
func (db *DB) CountSamples(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { observe("COUNT", "pricing_samples", start, err) }()

	if err = db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM pricing_samples`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pricing samples: %w", err)
	}
	return n, nil
}

// DeleteSamples removes every stored pricing sample.
func (db *DB) DeleteSamples(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe("DELETE", "pricing_samples", start, err) }()

	if _, err = db.conn.ExecContext(ctx, `DELETE FROM pricing_samples`); err != nil {
		return fmt.Errorf("failed to delete pricing samples: %w", err)
	}
	return nil
}
