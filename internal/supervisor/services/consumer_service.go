// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package services

import (
	"context"
	"errors"
	"fmt"
)

// Runner blocks processing work until ctx is canceled.
// *eventprocessor.Consumer satisfies it.
type Runner interface {
	Run(ctx context.Context) error
}

// ConsumerService runs the feedback consumer under supervision.
type ConsumerService struct {
	runner Runner
	name   string
}

// NewConsumerService wraps runner.
func NewConsumerService(runner Runner) *ConsumerService {
	return &ConsumerService{runner: runner, name: "feedback-consumer"}
}

// Serve implements suture.Service.
func (c *ConsumerService) Serve(ctx context.Context) error {
	err := c.runner.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		err = errors.New("stopped unexpectedly")
	}
	return fmt.Errorf("feedback consumer: %w", err)
}

// String implements fmt.Stringer.
func (c *ConsumerService) String() string {
	return c.name
}
