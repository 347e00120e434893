package usecase

import (
	"sort"

	"github.com/nutriscope/backend/internal/domain"
)

// NutrientTable is the in-memory dataset of foods x nutrient columns. It is
// built once from raw wide-format records, cleaned during construction, and
// read-only afterward, so it is safe to share across concurrent queries.
//
// Cleaning: records with a duplicate description are dropped (first
// occurrence wins, order-stable) and missing nutrient values are filled with
// 0.0 so every record carries every column.
type NutrientTable struct {
	records []domain.FoodRecord
	keys    []string
}

// NewNutrientTable builds a cleaned table from raw records. An empty input
// yields an empty table, which is a valid state: every query against it
// returns empty results.
//
// Column order is first-seen order across records; Go maps are unordered, so
// within a single record keys are taken in sorted order to keep the column
// order deterministic.
func NewNutrientTable(records []domain.FoodRecord) *NutrientTable {
	t := &NutrientTable{}

	seen := make(map[string]bool, len(records))
	known := make(map[string]bool)
	for _, rec := range records {
		if seen[rec.Description] {
			continue
		}
		seen[rec.Description] = true
		t.records = append(t.records, rec)

		for _, key := range sortedNutrientKeys(rec.Nutrients) {
			if !known[key] {
				known[key] = true
				t.keys = append(t.keys, key)
			}
		}
	}

	// zero-fill: every kept record gets every column, absent values become
	// 0.0; the copy also gives the table exclusive ownership of the maps
	for i := range t.records {
		nutrients := make(map[string]float64, len(t.keys))
		for _, key := range t.keys {
			nutrients[key] = t.records[i].Nutrients[key]
		}
		t.records[i].Nutrients = nutrients
	}

	return t
}

func sortedNutrientKeys(nutrients map[string]float64) []string {
	keys := make([]string, 0, len(nutrients))
	for key := range nutrients {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the cleaned records in table order.
func (t *NutrientTable) Records() []domain.FoodRecord {
	return t.records
}

// NutrientKeys returns all nutrient column keys in table-column order.
func (t *NutrientTable) NutrientKeys() []string {
	return t.keys
}

// Empty reports whether the table holds no records.
func (t *NutrientTable) Empty() bool {
	return len(t.records) == 0
}

// Len returns the number of records after cleaning.
func (t *NutrientTable) Len() int {
	return len(t.records)
}
