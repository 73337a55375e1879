// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/menuscore/internal/pricing"
)

// quoteOptions defaults to a Saturday dinner main course near a concert.
type quoteOptions struct {
	train trainOptions

	basePrice            float64
	hour                 int
	dayOfWeek            int
	isWeekend            bool
	isHoliday            bool
	currentDemand        int
	competitorPriceRatio float64
	weather              string
	event                string
	historicalSales      int
	inventoryLevel       int
	category             string
	preparationTime      int
}

func (o *quoteOptions) features() pricing.FeatureVector {
	return pricing.FeatureVector{
		pricing.FieldHour:                 o.hour,
		pricing.FieldDayOfWeek:            o.dayOfWeek,
		pricing.FieldIsWeekend:            o.isWeekend,
		pricing.FieldIsHoliday:            o.isHoliday,
		pricing.FieldCurrentDemand:        o.currentDemand,
		pricing.FieldCompetitorPriceRatio: o.competitorPriceRatio,
		pricing.FieldWeatherCondition:     o.weather,
		pricing.FieldEventType:            o.event,
		pricing.FieldHistoricalSales:      o.historicalSales,
		pricing.FieldInventoryLevel:       o.inventoryLevel,
		pricing.FieldCategory:             o.category,
		pricing.FieldPreparationTime:      o.preparationTime,
	}
}

func newQuoteCmd(root *rootOptions) *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Train a model and quote one price",
		Example: `  menuctl quote
  menuctl quote --base-price 12.50 --hour 13 --weather rainy --event none`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			source, cleanup, err := opts.train.resolveSource(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			predictor, state, err := trainFrom(cmd.Context(), cfg, source)
			if err != nil {
				return err
			}
			quote, err := predictor.PredictPrice(opts.basePrice, opts.features())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printState(w, state)
			fmt.Fprintf(w, "base price:    %.2f\n", quote.BasePrice)
			fmt.Fprintf(w, "multiplier:    %.4f\n", quote.Multiplier)
			fmt.Fprintf(w, "dynamic price: %.2f\n", quote.Price)
			return nil
		},
	}

	opts.train.register(cmd)
	f := cmd.Flags()
	f.Float64Var(&opts.basePrice, "base-price", 19.99, "menu price before the multiplier")
	f.IntVar(&opts.hour, "hour", 18, "hour of day (0-23)")
	f.IntVar(&opts.dayOfWeek, "day-of-week", 5, "day of week, Monday=0")
	f.BoolVar(&opts.isWeekend, "weekend", true, "weekend flag")
	f.BoolVar(&opts.isHoliday, "holiday", false, "holiday flag")
	f.IntVar(&opts.currentDemand, "demand", 75, "current demand (0-100)")
	f.Float64Var(&opts.competitorPriceRatio, "competitor-ratio", 1.1, "competitor price ratio")
	f.StringVar(&opts.weather, "weather", "sunny", "weather condition")
	f.StringVar(&opts.event, "event", "concert", "nearby event type")
	f.IntVar(&opts.historicalSales, "historical-sales", 500, "historical sales volume")
	f.IntVar(&opts.inventoryLevel, "inventory", 30, "inventory level")
	f.StringVar(&opts.category, "category", "main", "menu category")
	f.IntVar(&opts.preparationTime, "prep-time", 25, "preparation time in minutes")
	return cmd
}
