// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/menuscore/internal/recommend"
)

const menuItemColumns = `id, name, description, category,
	is_vegetarian, is_vegan, is_gluten_free, is_spicy, is_special, is_seasonal,
	average_rating, order_frequency, preparation_time,
	price_category, base_price, peak_hours`

// ListMenuItems returns the whole catalog in insertion order.
func (db *DB) ListMenuItems(ctx context.Context) (items []recommend.MenuItem, err error) {
	start := time.Now()
	defer func() { observe("SELECT", "menu_items", start, err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer closeWithLog(rows, "rows")

	items = make([]recommend.MenuItem, 0)
	for rows.Next() {
		item, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem returns one catalog entry, or ErrNotFound.
func (db *DB) GetMenuItem(ctx context.Context, id string) (item recommend.MenuItem, err error) {
	start := time.Now()
	defer func() { observe("SELECT", "menu_items", start, err) }()

	row := db.conn.QueryRowContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = ?`, id)
	item, err = scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return recommend.MenuItem{}, ErrNotFound
	}
	return item, err
}

// UpsertMenuItem inserts the item or replaces every column of an existing one.
// An existing item keeps its catalog position.
//
//nolint:gocritic // hugeParam: item passed by value for immutability
func (db *DB) UpsertMenuItem(ctx context.Context, item recommend.MenuItem) (err error) {
	start := time.Now()
	defer func() { observe("UPSERT", "menu_items", start, err) }()

	if item.ID == "" {
		return fmt.Errorf("menu item id is required")
	}
	peakHours, err := json.Marshal(nonNilInts(item.PeakHours))
	if err != nil {
		return fmt.Errorf("failed to encode peak hours: %w", err)
	}

	_, err = db.conn.ExecContext(ctx, `INSERT INTO menu_items (
		id, name, description, category,
		is_vegetarian, is_vegan, is_gluten_free, is_spicy, is_special, is_seasonal,
		average_rating, order_frequency, preparation_time,
		price_category, base_price, peak_hours, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		description = excluded.description,
		category = excluded.category,
		is_vegetarian = excluded.is_vegetarian,
		is_vegan = excluded.is_vegan,
		is_gluten_free = excluded.is_gluten_free,
		is_spicy = excluded.is_spicy,
		is_special = excluded.is_special,
		is_seasonal = excluded.is_seasonal,
		average_rating = excluded.average_rating,
		order_frequency = excluded.order_frequency,
		preparation_time = excluded.preparation_time,
		price_category = excluded.price_category,
		base_price = excluded.base_price,
		peak_hours = excluded.peak_hours,
		updated_at = excluded.updated_at`,
		item.ID, item.Name, item.Description, item.Category,
		item.IsVegetarian, item.IsVegan, item.IsGlutenFree, item.IsSpicy, item.IsSpecial, item.IsSeasonal,
		nullFloat(item.AverageRating), nullFloat(item.OrderFrequency), nullFloat(item.PreparationTime),
		string(item.PriceCategory), item.BasePrice, string(peakHours), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert menu item %s: %w", item.ID, err)
	}
	return nil
}

// CountMenuItems returns the catalog size.
func (db *DB) CountMenuItems(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { observe("COUNT", "menu_items", start, err) }()

	err = db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return n, nil
}

// RefreshItemRating sets the item's average rating to the mean of its
// feedback. Items without feedback keep their current rating.
func (db *DB) RefreshItemRating(ctx context.Context, itemID string) (err error) {
	start := time.Now()
	defer func() { observe("UPDATE", "menu_items", start, err) }()

	res, err := db.conn.ExecContext(ctx, `UPDATE menu_items
		SET average_rating = (SELECT AVG(rating) FROM feedback WHERE item_id = ?),
			updated_at = ?
		WHERE id = ? AND EXISTS (SELECT 1 FROM feedback WHERE item_id = ?)`,
		itemID, time.Now().UTC(), itemID, itemID)
	if err != nil {
		return fmt.Errorf("failed to refresh rating for %s: %w", itemID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		db.logger.Debug().Str("item_id", itemID).Msg("No rating refresh: unknown item or no feedback")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (recommend.MenuItem, error) {
	var (
		item                        recommend.MenuItem
		rating, frequency, prepTime sql.NullFloat64
		priceCategory, peakHours    string
	)
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Category,
		&item.IsVegetarian, &item.IsVegan, &item.IsGlutenFree, &item.IsSpicy, &item.IsSpecial, &item.IsSeasonal,
		&rating, &frequency, &prepTime,
		&priceCategory, &item.BasePrice, &peakHours,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, err
		}
		return item, fmt.Errorf("failed to scan menu item: %w", err)
	}

	item.AverageRating = floatPtr(rating)
	item.OrderFrequency = floatPtr(frequency)
	item.PreparationTime = floatPtr(prepTime)
	item.PriceCategory = recommend.PriceCategory(priceCategory)

	if peakHours != "" {
		if err := json.Unmarshal([]byte(peakHours), &item.PeakHours); err != nil {
			return item, fmt.Errorf("failed to decode peak hours of %s: %w", item.ID, err)
		}
	}
	return item, nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nonNilInts(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
