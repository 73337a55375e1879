// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/menuscore/internal/models"
)

// RecordFeedback stores one rating. ID and CreatedAt are assigned when empty.
// The referenced item must exist.
func (db *DB) RecordFeedback(ctx context.Context, fb *models.Feedback) (err error) {
	start := time.Now()
	defer func() { observe("INSERT", "feedback", start, err) }()

	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", fb.Rating)
	}
	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	var exists bool
	err = db.conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM menu_items WHERE id = ?)`, fb.ItemID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check menu item %s: %w", fb.ItemID, err)
	}
	if !exists {
		return ErrNotFound
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO feedback (id, user_id, item_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		fb.ID, fb.UserID, fb.ItemID, fb.Rating, fb.Comment, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// ListFeedback returns the ratings a user left, newest first.
func (db *DB) ListFeedback(ctx context.Context, userID string, limit int) (out []models.Feedback, err error) {
	start := time.Now()
	defer func() { observe("SELECT", "feedback", start, err) }()

	if limit <= 0 {
		limit = 100
	}
	rows, err := db.conn.QueryContext(ctx, `SELECT id, user_id, item_id, rating, comment, created_at
		FROM feedback WHERE user_id = ? ORDER BY created_at DESC, id LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = make([]models.Feedback, 0)
	for rows.Next() {
		var fb models.Feedback
		if err = rows.Scan(&fb.ID, &fb.UserID, &fb.ItemID, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		out = append(out, fb)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}
	return out, nil
}
