// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"github.com/tomtom215/menuscore/internal/api"
	"github.com/tomtom215/menuscore/internal/config"
	"github.com/tomtom215/menuscore/internal/eventprocessor"
	"github.com/tomtom215/menuscore/internal/logging"
	"github.com/tomtom215/menuscore/internal/supervisor"
	"github.com/tomtom215/menuscore/internal/supervisor/services"
)

// initEvents wires feedback notification.
//
// With events enabled, feedback is published on the in-process bus and the
// rating updater consumes it in the data layer. Otherwise ratings are
// refreshed inline during the feedback request.
func initEvents(cfg *config.Config, store eventprocessor.RatingStore, tree *supervisor.SupervisorTree) (api.FeedbackNotifier, func(), error) {
	logger := logging.WithComponent("events")
	updater := eventprocessor.NewRatingUpdater(store, logger)

	if !cfg.Events.Enabled {
		logger.Info().Msg("Feedback events disabled, refreshing ratings inline")
		return eventprocessor.NewInlineNotifier(updater), func() {}, nil
	}

	bus := eventprocessor.NewBus(cfg.Events, eventprocessor.NewLogger())
	topic := cfg.Events.FeedbackTopic

	consumer := eventprocessor.NewConsumer(bus, topic, updater, eventprocessor.DefaultRouterConfig(topic))
	tree.AddDataService(services.NewConsumerService(consumer))

	closeBus := func() {
		if err := bus.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close event bus")
		}
	}

	logger.Info().
		Str("topic", topic).
		Int64("buffer_size", cfg.Events.BufferSize).
		Msg("Feedback consumer added to supervisor tree")

	return eventprocessor.NewFeedbackPublisher(bus.Publisher(), topic), closeBus, nil
}
