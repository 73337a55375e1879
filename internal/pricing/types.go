// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package pricing

import (
	"context"
	"time"
)

// Feature names of the pricing schema.
const (
	FieldHour                 = "hour"
	FieldDayOfWeek            = "day_of_week"
	FieldIsWeekend            = "is_weekend"
	FieldIsHoliday            = "is_holiday"
	FieldCurrentDemand        = "current_demand"
	FieldCompetitorPriceRatio = "competitor_price_ratio"
	FieldHistoricalSales      = "historical_sales"
	FieldInventoryLevel       = "inventory_level"
	FieldPreparationTime      = "preparation_time"
	FieldWeatherCondition     = "weather_condition"
	FieldEventType            = "event_type"
	FieldCategory             = "category"
)

// Schema describes the trained feature columns.
type Schema struct {
	Numeric     []string `json:"numeric"`
	Categorical []string `json:"categorical"`
}

// DefaultSchema returns the feature schema the predictor is trained on.
func DefaultSchema() Schema {
	return Schema{
		Numeric: []string{
			FieldHour,
			FieldDayOfWeek,
			FieldIsWeekend,
			FieldIsHoliday,
			FieldCurrentDemand,
			FieldCompetitorPriceRatio,
			FieldHistoricalSales,
			FieldInventoryLevel,
			FieldPreparationTime,
		},
		Categorical: []string{
			FieldWeatherCondition,
			FieldEventType,
			FieldCategory,
		},
	}
}

// Fields returns every schema key, numerics first.
func (s Schema) Fields() []string {
	out := make([]string, 0, len(s.Numeric)+len(s.Categorical))
	out = append(out, s.Numeric...)
	out = append(out, s.Categorical...)
	return out
}

// FeatureVector is one pricing context keyed by schema name. Numeric fields
// accept any Go numeric type or bool; categorical fields take strings.
type FeatureVector map[string]any

// Sample is one historical observation: a pricing context, the base price it
// applied to, and the multiplier that was charged.
type Sample struct {
	BasePrice            float64 `json:"base_price" parquet:"name=base_price,type=DOUBLE"`
	Hour                 int64   `json:"hour" parquet:"name=hour,type=INT64"`
	DayOfWeek            int64   `json:"day_of_week" parquet:"name=day_of_week,type=INT64"`
	IsWeekend            int64   `json:"is_weekend" parquet:"name=is_weekend,type=INT64"`
	IsHoliday            int64   `json:"is_holiday" parquet:"name=is_holiday,type=INT64"`
	CurrentDemand        int64   `json:"current_demand" parquet:"name=current_demand,type=INT64"`
	CompetitorPriceRatio float64 `json:"competitor_price_ratio" parquet:"name=competitor_price_ratio,type=DOUBLE"`
	WeatherCondition     string  `json:"weather_condition" parquet:"name=weather_condition,type=BYTE_ARRAY,convertedtype=UTF8"`
	EventType            string  `json:"event_type" parquet:"name=event_type,type=BYTE_ARRAY,convertedtype=UTF8"`
	HistoricalSales      int64   `json:"historical_sales" parquet:"name=historical_sales,type=INT64"`
	InventoryLevel       int64   `json:"inventory_level" parquet:"name=inventory_level,type=INT64"`
	Category             string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	PreparationTime      int64   `json:"preparation_time" parquet:"name=preparation_time,type=INT64"`
	PriceMultiplier      float64 `json:"price_multiplier" parquet:"name=price_multiplier,type=DOUBLE"`
}

// Features returns the sample's pricing context as a FeatureVector.
//
//nolint:gocritic // hugeParam: sample passed by value for immutability
func (s Sample) Features() FeatureVector {
	return FeatureVector{
		FieldHour:                 s.Hour,
		FieldDayOfWeek:            s.DayOfWeek,
		FieldIsWeekend:            s.IsWeekend,
		FieldIsHoliday:            s.IsHoliday,
		FieldCurrentDemand:        s.CurrentDemand,
		FieldCompetitorPriceRatio: s.CompetitorPriceRatio,
		FieldHistoricalSales:      s.HistoricalSales,
		FieldInventoryLevel:       s.InventoryLevel,
		FieldPreparationTime:      s.PreparationTime,
		FieldWeatherCondition:     s.WeatherCondition,
		FieldEventType:            s.EventType,
		FieldCategory:             s.Category,
	}
}

// SampleSource supplies the historical training table.
type SampleSource interface {
	LoadSamples(ctx context.Context) ([]Sample, error)
}

// Quote is the result of pricing one item.
type Quote struct {
	BasePrice    float64 `json:"base_price"`
	Multiplier   float64 `json:"multiplier"`
	Price        float64 `json:"price"`
	ModelVersion int64   `json:"model_version"`
}

// TrainedState is an immutable snapshot of a fitted model. A retrain builds a
// new snapshot; published snapshots are never modified.
type TrainedState struct {
	encoder *Encoder
	forest  *Forest

	Schema        Schema    `json:"schema"`
	Version       int64     `json:"version"`
	TrainedAt     time.Time `json:"trained_at"`
	SampleCount   int       `json:"sample_count"`
	TrainingScore float64   `json:"training_score"`
}

// predict returns the raw (unclipped) multiplier for an encoded vector.
func (s *TrainedState) predict(fv FeatureVector) (float64, error) {
	row, err := s.encoder.Transform(fv)
	if err != nil {
		return 0, err
	}
	return s.forest.Predict(row), nil
}
