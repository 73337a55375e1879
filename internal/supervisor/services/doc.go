// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package services provides suture.Service wrappers for menuscore components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so the supervisor can name it in
its logs.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - http.ErrServerClosed is not treated as a failure

Pricing Trainer (TrainerService):
  - Trains the price predictor on startup and, optionally, on an interval
  - Each run is bounded by a timeout and recorded in the model_* metrics
  - A failed run keeps the previous model and does not restart the service

Feedback Consumer (ConsumerService):
  - Runs the Watermill router that folds feedback into item ratings
  - A router failure is returned so the supervisor restarts it
*/
package services
