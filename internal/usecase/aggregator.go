package usecase

import (
	"log"

	"github.com/nutriscope/backend/internal/domain"
	"github.com/nutriscope/backend/internal/guidelines"
)

// ProfileAggregator combines multiple consumed foods into one nutrient
// profile, scaling each food's per-serving values to the consumed amount and
// attaching guideline-relative daily value percentages.
type ProfileAggregator struct {
	resolver *FoodResolver
	registry *guidelines.Registry
}

// NewProfileAggregator creates an aggregator sharing the given registry.
func NewProfileAggregator(registry *guidelines.Registry) *ProfileAggregator {
	return &ProfileAggregator{
		resolver: NewFoodResolver(),
		registry: registry,
	}
}

// Aggregate resolves each item's food query and accumulates
// amount * consumedGrams / servingSize per nutrient key across all items.
// When a query resolves to several records the first one in table order is
// used. Items that resolve to nothing, or whose consumed amount or serving
// size is non-positive, contribute nothing; the rest of the batch still
// aggregates. Once any item contributes, every table column is present in
// the result: cleaned records carry every column, so a nutrient the foods
// lack shows up as a zero total rather than going missing.
func (a *ProfileAggregator) Aggregate(items []domain.ProfileItem, table *NutrientTable, sex domain.Sex) domain.NutrientProfile {
	profile := make(domain.NutrientProfile)
	if table == nil || table.Empty() {
		return profile
	}

	totals := make(map[string]float64)
	for _, item := range items {
		if item.AmountGrams <= 0 {
			log.Printf("[PROFILE] Skipping %q: non-positive amount %.1fg", item.Food, item.AmountGrams)
			continue
		}

		matches := a.resolver.Resolve(item.Food, table)
		if len(matches) == 0 {
			log.Printf("[PROFILE] No match for %q", item.Food)
			continue
		}

		rec := matches[0]
		if rec.ServingSize <= 0 {
			log.Printf("[PROFILE] Skipping %q: record %q has serving size %.1f", item.Food, rec.Description, rec.ServingSize)
			continue
		}

		// every column accumulates, zeros included: "consumed none of
		// this nutrient" must surface in the profile as a zero total
		for _, key := range table.NutrientKeys() {
			totals[key] += rec.Nutrients[key] * item.AmountGrams / rec.ServingSize
		}
	}

	for key, total := range totals {
		entry := domain.ProfileEntry{TotalAmount: total}
		if matched := a.registry.MatchKey(key); matched != "" {
			if req, ok := a.registry.Get(matched, sex); ok && req.RDA != nil {
				pct := total / *req.RDA * 100
				entry.DailyValuePct = &pct
			}
		}
		profile[key] = entry
	}

	return profile
}
