// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package eventprocessor

import (
	"context"
	"fmt"
	"sync/atomic"
)

const ratingHandlerName = "rating-updater"

// Consumer runs the rating updater on the feedback topic.
// A Watermill router can only run once, so every Run builds a new one;
// this lets a supervisor restart the consumer after a failure.
type Consumer struct {
	bus     *Bus
	topic   string
	updater *RatingUpdater
	config  RouterConfig
	running atomic.Bool
}

// NewConsumer creates a consumer of topic on bus.
//
//nolint:gocritic // hugeParam: cfg passed by value, read once
func NewConsumer(bus *Bus, topic string, updater *RatingUpdater, cfg RouterConfig) *Consumer {
	if topic == "" {
		topic = DefaultFeedbackTopic
	}
	return &Consumer{bus: bus, topic: topic, updater: updater, config: cfg}
}

// Run subscribes and processes messages until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	router, err := NewRouter(c.config, c.bus.Publisher(), c.bus.Logger())
	if err != nil {
		return err
	}
	router.AddConsumerHandler(ratingHandlerName, c.topic, c.bus.Subscriber(), c.updater.Handle)

	c.running.Store(true)
	defer c.running.Store(false)

	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("feedback router: %w", err)
	}
	return ctx.Err()
}

// IsRunning reports whether the router is processing messages.
func (c *Consumer) IsRunning() bool {
	return c.running.Load()
}
