package usecase

import "github.com/nutriscope/backend/internal/domain"

// Reshape converts wide food records into the normalized long-form view: one
// observation per (record, nutrient) pair with a positive amount. Nutrient
// key order from the input is preserved, record by record.
func Reshape(records []domain.FoodRecord, nutrientKeys []string) []domain.NutrientObservation {
	var observations []domain.NutrientObservation
	for _, rec := range records {
		for _, key := range nutrientKeys {
			if amount := rec.Nutrients[key]; amount > 0 {
				observations = append(observations, domain.NutrientObservation{
					Nutrient: key,
					Amount:   amount,
				})
			}
		}
	}
	return observations
}
