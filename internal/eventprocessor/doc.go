// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

// Package eventprocessor carries rating feedback from the API to the catalog
// through an in-process Watermill bus.
//
//	POST /api/v1/feedback
//	        │ FeedbackPublisher.PublishFeedback
//	        ▼
//	gochannel topic "feedback.recorded"
//	        │ Router (poison queue, retry, recoverer)
//	        ▼
//	RatingUpdater.Handle ──► store.RefreshItemRating(item_id)
//
// The router acks a message when the handler returns nil and nacks it
// otherwise. Retries are exhausted inside the handler chain; a message that
// still fails is moved to the poison topic so the bus does not redeliver it
// forever.
//
// When events are disabled the API uses an InlineNotifier, which refreshes
// the rating synchronously in the request.
package eventprocessor
