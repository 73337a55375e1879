// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package recommend

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned when a batch operation receives no items.
// Every *EmptyBatchError matches it with errors.Is.
var ErrEmptyBatch = &EmptyBatchError{}

// MissingFieldError reports a required item field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// EmptyBatchError reports a batch operation invoked with zero items.
type EmptyBatchError struct {
	Operation string
}

func (e *EmptyBatchError) Error() string {
	if e.Operation == "" {
		return "empty batch"
	}
	return fmt.Sprintf("%s: empty batch", e.Operation)
}

// Is makes every EmptyBatchError match ErrEmptyBatch.
func (e *EmptyBatchError) Is(target error) bool {
	var other *EmptyBatchError
	return errors.As(target, &other)
}

// ScoringError wraps a feature construction failure for a single item.
type ScoringError struct {
	ItemID string
	Err    error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("score item %q: %v", e.ItemID, e.Err)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}
