package usda

import (
	"strings"

	"github.com/nutriscope/backend/internal/domain"
)

// defaultServingGrams is the reference serving for Foundation / SR Legacy
// records, which report nutrients per 100 g.
const defaultServingGrams = 100.0

// MapFoodRecord converts a FDC food detail response into a wide FoodRecord.
// Each reported nutrient becomes a "<name>_<unit>" column; measurements with
// no amount are dropped (the table's cleaning pass zero-fills them later).
func MapFoodRecord(food *domain.USDAFoodDetail) domain.FoodRecord {
	rec := domain.FoodRecord{
		FdcID:       food.FdcID,
		Description: formatFoodName(food.Description),
		DataType:    food.DataType,
		ServingSize: defaultServingGrams,
		ServingUnit: "g",
		Nutrients:   make(map[string]float64, len(food.FoodNutrients)),
	}

	for _, n := range food.FoodNutrients {
		if n.Amount == nil || n.Nutrient.Name == "" || n.Nutrient.UnitName == "" {
			continue
		}
		rec.Nutrients[NutrientKey(n.Nutrient.Name, n.Nutrient.UnitName)] = *n.Amount
	}

	return rec
}

// NutrientKey normalizes a FDC nutrient name and unit into a column key:
// commas dropped, lowercased, spaces and hyphens as underscores, unit
// appended (e.g. "Vitamin C, total" + "MG" -> "vitamin_c_total_mg").
func NutrientKey(name, unit string) string {
	name = strings.ReplaceAll(name, ",", "")
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name + "_" + strings.ToLower(unit)
}

// formatFoodName reshapes FDC's "Main, descriptor, more" descriptions into
// "Main (Descriptor, More)" for display.
func formatFoodName(name string) string {
	if idx := strings.Index(name, ","); idx > 0 {
		main := strings.TrimSpace(name[:idx])
		descriptor := strings.TrimSpace(name[idx+1:])
		return titleCase(main) + " (" + titleCase(descriptor) + ")"
	}
	return titleCase(name)
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(words, " ")
}
