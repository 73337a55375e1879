// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func fitTestEncoder(t *testing.T) *Encoder {
	t.Helper()
	samples := smallSamples(300)
	rows := make([]FeatureVector, len(samples))
	for i := range samples {
		rows[i] = samples[i].Features()
	}
	enc, err := FitEncoder(DefaultSchema(), rows)
	if err != nil {
		t.Fatalf("FitEncoder() error = %v", err)
	}
	return enc
}

func TestEncoder_DropsFirstLevel(t *testing.T) {
	t.Parallel()

	enc := fitTestEncoder(t)

	if got := enc.Levels(FieldWeatherCondition); !reflect.DeepEqual(got, []string{"cloudy", "rainy", "sunny"}) {
		t.Errorf("weather levels = %v", got)
	}
	// 9 numerics + (3-1) weather + (4-1) event + (4-1) category.
	if enc.Width() != 17 {
		t.Errorf("Width() = %d, want 17", enc.Width())
	}

	names := enc.ColumnNames()
	if names[9] != "weather_condition_rainy" || names[10] != "weather_condition_sunny" {
		t.Errorf("unexpected one-hot columns: %v", names[9:11])
	}
	for _, n := range names {
		if n == "weather_condition_cloudy" || n == "event_type_concert" || n == "category_appetizer" {
			t.Errorf("reference level %s should be dropped", n)
		}
	}
}

func TestEncoder_ReferenceLevelIsAllZero(t *testing.T) {
	t.Parallel()

	enc := fitTestEncoder(t)
	fv := sampleVector()
	fv[FieldWeatherCondition] = "cloudy"

	row, err := enc.Transform(fv)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if row[9] != 0 || row[10] != 0 {
		t.Errorf("cloudy encoded as %v, want zeros", row[9:11])
	}

	fv[FieldWeatherCondition] = "sunny"
	row, err = enc.Transform(fv)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if row[9] != 0 || row[10] != 1 {
		t.Errorf("sunny encoded as %v, want [0 1]", row[9:11])
	}
}

func TestEncoder_StandardizesNumerics(t *testing.T) {
	t.Parallel()

	schema := Schema{Numeric: []string{"a", "b"}}
	rows := []FeatureVector{
		{"a": 1, "b": 5},
		{"a": 3, "b": 5},
	}
	enc, err := FitEncoder(schema, rows)
	if err != nil {
		t.Fatalf("FitEncoder() error = %v", err)
	}

	row, err := enc.Transform(FeatureVector{"a": 3, "b": 7})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	// a: mean 2, population std 1. b: constant, scale 1.
	if math.Abs(row[0]-1) > 1e-12 || math.Abs(row[1]-2) > 1e-12 {
		t.Errorf("row = %v, want [1 2]", row)
	}
}

func TestEncoder_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	enc := fitTestEncoder(t)
	fv := sampleVector()
	delete(fv, FieldHour)
	fv["extra"] = 1
	fv[FieldCategory] = 3
	fv[FieldCurrentDemand] = math.NaN()

	_, err := enc.Transform(fv)
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got %v", err)
	}
	if !reflect.DeepEqual(mismatch.Missing, []string{FieldHour}) {
		t.Errorf("Missing = %v", mismatch.Missing)
	}
	if !reflect.DeepEqual(mismatch.Extra, []string{"extra"}) {
		t.Errorf("Extra = %v", mismatch.Extra)
	}
	if len(mismatch.Invalid) != 2 {
		t.Errorf("Invalid = %v, want 2 entries", mismatch.Invalid)
	}
	if mismatch.Error() == "" {
		t.Error("empty error message")
	}
}

func TestFitEncoder_Empty(t *testing.T) {
	t.Parallel()

	if _, err := FitEncoder(DefaultSchema(), nil); !errors.Is(err, ErrNoSamples) {
		t.Errorf("FitEncoder(nil) error = %v, want ErrNoSamples", err)
	}
}
