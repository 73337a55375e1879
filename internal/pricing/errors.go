// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUntrainedModel is returned by predictions made before any training.
	ErrUntrainedModel = &UntrainedModelError{}

	// ErrNoSamples is returned when training receives an empty table.
	ErrNoSamples = errors.New("no training samples")

	// ErrTrainingInProgress is returned when another training run holds the lock.
	ErrTrainingInProgress = errors.New("training already in progress")
)

// UntrainedModelError reports a prediction attempted with no trained state.
type UntrainedModelError struct{}

func (e *UntrainedModelError) Error() string {
	return "pricing model has not been trained"
}

// Is makes every UntrainedModelError match ErrUntrainedModel.
func (e *UntrainedModelError) Is(target error) bool {
	_, ok := target.(*UntrainedModelError)
	return ok
}

// SchemaMismatchError reports a FeatureVector that does not match the trained
// schema. Invalid maps a key to the reason its value was rejected.
type SchemaMismatchError struct {
	Missing []string
	Extra   []string
	Invalid map[string]string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Extra, ", "))
	}
	if len(e.Invalid) > 0 {
		keys := sortedKeys(e.Invalid)
		invalid := make([]string, len(keys))
		for i, k := range keys {
			invalid[i] = fmt.Sprintf("%s (%s)", k, e.Invalid[k])
		}
		parts = append(parts, "invalid "+strings.Join(invalid, ", "))
	}
	return "feature schema mismatch: " + strings.Join(parts, "; ")
}

func (e *SchemaMismatchError) empty() bool {
	return len(e.Missing) == 0 && len(e.Extra) == 0 && len(e.Invalid) == 0
}

func (e *SchemaMismatchError) invalid(key, reason string) {
	if e.Invalid == nil {
		e.Invalid = make(map[string]string)
	}
	e.Invalid[key] = reason
}

// InvalidPriceError reports a base price that is not a positive finite number.
type InvalidPriceError struct {
	BasePrice float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("base price must be a positive number, got %v", e.BasePrice)
}
