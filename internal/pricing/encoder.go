// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Encoder turns a FeatureVector into the model's input row: numeric columns
// standardized with the training mean and population deviation, followed by
// one-hot columns for each categorical with its first level dropped.
type Encoder struct {
	schema Schema
	mean   []float64
	scale  []float64

	// levels holds each categorical's sorted levels; levels[i][0] is the
	// dropped reference level.
	levels [][]string
}

// FitEncoder learns standardization parameters and categorical levels from rows.
// Every row must match schema.
func FitEncoder(schema Schema, rows []FeatureVector) (*Encoder, error) {
	if len(rows) == 0 {
		return nil, ErrNoSamples
	}

	e := &Encoder{
		schema: schema,
		mean:   make([]float64, len(schema.Numeric)),
		scale:  make([]float64, len(schema.Numeric)),
		levels: make([][]string, len(schema.Categorical)),
	}

	numeric := make([][]float64, len(schema.Numeric))
	for j := range numeric {
		numeric[j] = make([]float64, len(rows))
	}
	seen := make([]map[string]struct{}, len(schema.Categorical))
	for j := range seen {
		seen[j] = make(map[string]struct{})
	}

	for i, fv := range rows {
		if mismatch := e.checkKeys(fv); mismatch != nil {
			return nil, fmt.Errorf("training row %d: %w", i, mismatch)
		}
		for j, name := range schema.Numeric {
			v, ok := toFloat(fv[name])
			if !ok {
				return nil, fmt.Errorf("training row %d: %w", i, &SchemaMismatchError{Invalid: map[string]string{name: "not a finite number"}})
			}
			numeric[j][i] = v
		}
		for j, name := range schema.Categorical {
			s, ok := fv[name].(string)
			if !ok {
				return nil, fmt.Errorf("training row %d: %w", i, &SchemaMismatchError{Invalid: map[string]string{name: "not a string"}})
			}
			seen[j][s] = struct{}{}
		}
	}

	for j := range schema.Numeric {
		mean, std := stat.PopMeanStdDev(numeric[j], nil)
		if std == 0 {
			std = 1
		}
		e.mean[j] = mean
		e.scale[j] = std
	}
	for j := range schema.Categorical {
		e.levels[j] = sortedKeys(seen[j])
	}

	return e, nil
}

// Width returns the number of encoded columns.
func (e *Encoder) Width() int {
	w := len(e.schema.Numeric)
	for _, lv := range e.levels {
		w += len(lv) - 1
	}
	return w
}

// ColumnNames returns the names of the encoded columns in order.
func (e *Encoder) ColumnNames() []string {
	names := make([]string, 0, e.Width())
	names = append(names, e.schema.Numeric...)
	for j, name := range e.schema.Categorical {
		for _, level := range e.levels[j][1:] {
			names = append(names, name+"_"+level)
		}
	}
	return names
}

// Levels returns the known levels of a categorical field.
func (e *Encoder) Levels(field string) []string {
	for j, name := range e.schema.Categorical {
		if name == field {
			return append([]string(nil), e.levels[j]...)
		}
	}
	return nil
}

// Transform validates fv against the schema and encodes it. Missing keys,
// extra keys, non-numeric values and unknown levels all fail with a
// *SchemaMismatchError listing every problem found.
func (e *Encoder) Transform(fv FeatureVector) ([]float64, error) {
	mismatch := e.checkKeys(fv)
	if mismatch == nil {
		mismatch = &SchemaMismatchError{}
	}

	row := make([]float64, e.Width())
	for j, name := range e.schema.Numeric {
		raw, present := fv[name]
		if !present {
			continue
		}
		v, ok := toFloat(raw)
		if !ok {
			mismatch.invalid(name, fmt.Sprintf("expected number, got %T", raw))
			continue
		}
		row[j] = (v - e.mean[j]) / e.scale[j]
	}

	offset := len(e.schema.Numeric)
	for j, name := range e.schema.Categorical {
		levels := e.levels[j]
		raw, present := fv[name]
		if present {
			s, ok := raw.(string)
			switch {
			case !ok:
				mismatch.invalid(name, fmt.Sprintf("expected string, got %T", raw))
			default:
				idx := sort.SearchStrings(levels, s)
				if idx == len(levels) || levels[idx] != s {
					mismatch.invalid(name, fmt.Sprintf("unknown level %q", s))
				} else if idx > 0 {
					row[offset+idx-1] = 1
				}
			}
		}
		offset += len(levels) - 1
	}

	if !mismatch.empty() {
		return nil, mismatch
	}
	return row, nil
}

// checkKeys compares the key set of fv with the schema. It returns nil when
// they match.
func (e *Encoder) checkKeys(fv FeatureVector) *SchemaMismatchError {
	mismatch := &SchemaMismatchError{}
	known := make(map[string]struct{}, len(e.schema.Numeric)+len(e.schema.Categorical))
	for _, name := range e.schema.Fields() {
		known[name] = struct{}{}
		if _, ok := fv[name]; !ok {
			mismatch.Missing = append(mismatch.Missing, name)
		}
	}
	for key := range fv {
		if _, ok := known[key]; !ok {
			mismatch.Extra = append(mismatch.Extra, key)
		}
	}
	sort.Strings(mismatch.Extra)
	if mismatch.empty() {
		return nil
	}
	return mismatch
}

// toFloat converts any Go numeric type or bool. NaN and infinities are rejected.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case bool:
		if n {
			f = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
