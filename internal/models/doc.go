// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

/*
Package models defines the API wire types of Menuscore.

  - APIResponse, Metadata, APIError: the response envelope
  - *Request types: request bodies with validate tags for internal/validation
  - Feedback: a stored user rating, shared by the store and the event bus

Domain types live with their logic in internal/recommend and internal/pricing.
*/
package models
