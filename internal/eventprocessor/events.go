// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package eventprocessor

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/menuscore/internal/models"
)

// SchemaVersion is the current FeedbackEvent payload version.
const SchemaVersion = 1

// FeedbackEvent is the payload published when a user rates an item.
type FeedbackEvent struct {
	SchemaVersion int       `json:"schema_version"`
	FeedbackID    string    `json:"feedback_id"`
	UserID        string    `json:"user_id"`
	ItemID        string    `json:"item_id"`
	Rating        int       `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewFeedbackEvent builds the event for a stored feedback record.
func NewFeedbackEvent(fb *models.Feedback) *FeedbackEvent {
	return &FeedbackEvent{
		SchemaVersion: SchemaVersion,
		FeedbackID:    fb.ID,
		UserID:        fb.UserID,
		ItemID:        fb.ItemID,
		Rating:        fb.Rating,
		CreatedAt:     fb.CreatedAt,
	}
}

// Validate checks the fields the consumer relies on.
func (e *FeedbackEvent) Validate() error {
	if e.ItemID == "" {
		return errors.New("item_id is required")
	}
	if e.Rating < 1 || e.Rating > 5 {
		return fmt.Errorf("rating %d out of range", e.Rating)
	}
	return nil
}

// MarshalEvent validates and encodes an event.
func MarshalEvent(e *FeedbackEvent) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// UnmarshalEvent decodes and validates an event.
func UnmarshalEvent(data []byte) (*FeedbackEvent, error) {
	var e FeedbackEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	return &e, nil
}
