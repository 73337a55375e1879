// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package api exposes recommendations, feedback, preferences, the menu catalog
and pricing quotes over HTTP using the Chi router.

# Routes

	GET  /api/v1/health/live            liveness
	GET  /api/v1/health/ready           database and pricing model readiness
	POST /api/v1/recommend              ranked menu items for a user
	POST /api/v1/feedback               store a rating, publish feedback.recorded
	GET  /api/v1/feedback/{userID}      a user's most recent ratings
	GET  /api/v1/preferences/{userID}   stored preferences (404 when none)
	PUT  /api/v1/preferences/{userID}   replace preferences
	GET  /api/v1/menu                   catalog listing
	PUT  /api/v1/menu/{itemID}          create or replace a menu item
	POST /api/v1/pricing/quote          dynamic price for a pricing context
	GET  /api/v1/pricing/status         metadata of the served pricing model
	GET  /metrics                       Prometheus exposition

# Responses

Every JSON response uses the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "...", "message": "..."}}

# Middleware

Global: request ID with logging context, RealIP, Recoverer, CORS,
Prometheus metrics and access logging. The /api/v1 data routes are also
rate limited per client IP through go-chi/httprate; health probes are not.
*/
package api
