// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package eventprocessor

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/menuscore/internal/metrics"
)

// RatingStore recomputes an item's average rating from its feedback.
type RatingStore interface {
	RefreshItemRating(ctx context.Context, itemID string) error
}

// RatingUpdater folds feedback events into the catalog ratings.
type RatingUpdater struct {
	store  RatingStore
	logger zerolog.Logger
}

// NewRatingUpdater creates an updater over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRatingUpdater(store RatingStore, logger zerolog.Logger) *RatingUpdater {
	return &RatingUpdater{
		store:  store,
		logger: logger.With().Str("component", "rating-updater").Logger(),
	}
}

// Handle is the Watermill handler. Undecodable payloads are acked and
// dropped since a retry cannot fix them; store errors are returned so the
// router retries and finally nacks.
func (u *RatingUpdater) Handle(msg *message.Message) error {
	event, err := UnmarshalEvent(msg.Payload)
	if err != nil {
		metrics.RecordFeedbackProcessed("invalid")
		u.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed feedback event")
		return nil
	}

	if err := u.Apply(msg.Context(), event); err != nil {
		return err
	}

	u.logger.Debug().
		Str("item_id", event.ItemID).
		Str("request_id", msg.Metadata.Get(MetadataRequestID)).
		Msg("Item rating refreshed")
	return nil
}

// Apply refreshes the rating of the event's item.
func (u *RatingUpdater) Apply(ctx context.Context, event *FeedbackEvent) error {
	if err := u.store.RefreshItemRating(ctx, event.ItemID); err != nil {
		metrics.RecordFeedbackProcessed("error")
		return fmt.Errorf("refresh rating of %s: %w", event.ItemID, err)
	}
	metrics.RecordFeedbackProcessed("success")
	return nil
}
