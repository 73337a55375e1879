// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

// Package supervisor arranges the long-running menuscore services in a
// suture v4 tree:
//
//	menuscore (root)
//	├── data-layer
//	│   └── feedback-consumer
//	├── model-layer
//	│   └── pricing-trainer
//	└── api-layer
//	    └── http-server
//
// Supervisor events are logged through sutureslog, which writes to the
// zerolog logger via logging.NewSlogLogger. Service wrappers live in the
// services subpackage.
package supervisor
