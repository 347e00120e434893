package usecase

import (
	"testing"

	"github.com/nutriscope/backend/internal/domain"
)

// testTable builds a small cleaned table shared across the usecase tests.
func testTable() *NutrientTable {
	return NewNutrientTable([]domain.FoodRecord{
		{
			FdcID:       1,
			Description: "Spinach (Raw)",
			DataType:    "SR Legacy",
			ServingSize: 100,
			ServingUnit: "g",
			Nutrients:   map[string]float64{"iron_mg": 2.71, "protein_g": 2.86, "vitamin_c_mg": 28.1},
		},
		{
			FdcID:       2,
			Description: "Beef (Ground)",
			DataType:    "SR Legacy",
			ServingSize: 100,
			ServingUnit: "g",
			Nutrients:   map[string]float64{"iron_mg": 2.5, "protein_g": 26},
		},
		{
			FdcID:       3,
			Description: "Tofu (Firm)",
			DataType:    "SR Legacy",
			ServingSize: 50,
			ServingUnit: "g",
			Nutrients:   map[string]float64{"iron_mg": 5.4, "protein_g": 8.1},
		},
	})
}

func TestNewNutrientTable(t *testing.T) {
	t.Run("deduplicates by description keeping first occurrence", func(t *testing.T) {
		table := NewNutrientTable([]domain.FoodRecord{
			{Description: "Apple", FdcID: 1, Nutrients: map[string]float64{"fiber_g": 2.4}},
			{Description: "Apple", FdcID: 2, Nutrients: map[string]float64{"fiber_g": 99}},
			{Description: "Banana", FdcID: 3, Nutrients: map[string]float64{"fiber_g": 2.6}},
		})

		if table.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", table.Len())
		}
		if got := table.Records()[0].FdcID; got != 1 {
			t.Errorf("first Apple FdcID = %d, want 1 (first occurrence wins)", got)
		}
	})

	t.Run("fills missing nutrient values with zero", func(t *testing.T) {
		table := NewNutrientTable([]domain.FoodRecord{
			{Description: "Apple", Nutrients: map[string]float64{"fiber_g": 2.4}},
			{Description: "Banana", Nutrients: map[string]float64{"potassium_mg": 358}},
		})

		apple := table.Records()[0]
		if got, ok := apple.Nutrients["potassium_mg"]; !ok || got != 0 {
			t.Errorf("apple potassium_mg = %v (present %v), want 0.0 filled in", got, ok)
		}
		banana := table.Records()[1]
		if got, ok := banana.Nutrients["fiber_g"]; !ok || got != 0 {
			t.Errorf("banana fiber_g = %v (present %v), want 0.0 filled in", got, ok)
		}
	})

	t.Run("column order is first-seen across records", func(t *testing.T) {
		table := NewNutrientTable([]domain.FoodRecord{
			{Description: "A", Nutrients: map[string]float64{"zinc_mg": 1}},
			{Description: "B", Nutrients: map[string]float64{"calcium_mg": 2, "zinc_mg": 3}},
		})

		keys := table.NutrientKeys()
		if len(keys) != 2 || keys[0] != "zinc_mg" || keys[1] != "calcium_mg" {
			t.Errorf("NutrientKeys() = %v, want [zinc_mg calcium_mg]", keys)
		}
	})

	t.Run("empty input yields a valid empty table", func(t *testing.T) {
		table := NewNutrientTable(nil)
		if !table.Empty() {
			t.Error("Empty() = false, want true")
		}
		if keys := table.NutrientKeys(); len(keys) != 0 {
			t.Errorf("NutrientKeys() = %v, want empty", keys)
		}
	})
}
