package http

import (
	"fmt"
	"strings"
)

// Category keyword filters for the vitamins / minerals / macronutrients
// grouping. Categorization is a display concern: a key lands in the first
// category with a matching keyword, or in none.
var (
	vitaminKeywords = []string{"vitamin", "folate", "thiamin", "riboflavin", "niacin"}
	mineralKeywords = []string{"calcium", "iron", "magnesium", "phosphorus",
		"potassium", "sodium", "zinc", "copper", "selenium"}
	macroKeywords = []string{"protein", "fat", "carbohydrate", "fiber", "sugar", "energy"}
)

// FormatNutrientName formats a nutrient column key for display,
// e.g. "vitamin_e_mg" -> "Vitamin E (MG)". The last underscore segment is
// treated as the unit.
func FormatNutrientName(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) < 2 {
		return titleWords(key)
	}

	unit := strings.ToUpper(parts[len(parts)-1])
	name := titleWords(strings.Join(parts[:len(parts)-1], " "))
	return fmt.Sprintf("%s (%s)", name, unit)
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// categorize buckets a nutrient key into "vitamins", "minerals", or
// "macronutrients"; "" means uncategorized.
func categorize(key string) string {
	lowered := strings.ToLower(key)
	for _, kw := range vitaminKeywords {
		if strings.Contains(lowered, kw) {
			return "vitamins"
		}
	}
	for _, kw := range mineralKeywords {
		if strings.Contains(lowered, kw) {
			return "minerals"
		}
	}
	for _, kw := range macroKeywords {
		if strings.Contains(lowered, kw) {
			return "macronutrients"
		}
	}
	return ""
}
