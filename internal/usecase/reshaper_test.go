package usecase

import (
	"testing"

	"github.com/nutriscope/backend/internal/domain"
)

func TestReshape(t *testing.T) {
	records := []domain.FoodRecord{
		{
			Description: "Spinach (Raw)",
			Nutrients:   map[string]float64{"iron_mg": 2.71, "vitamin_c_mg": 28.1, "sugars_g": 0},
		},
	}
	keys := []string{"vitamin_c_mg", "iron_mg", "sugars_g"}

	t.Run("emits only positive amounts in key order", func(t *testing.T) {
		obs := Reshape(records, keys)
		if len(obs) != 2 {
			t.Fatalf("len = %d, want 2 (zero amount dropped)", len(obs))
		}
		if obs[0].Nutrient != "vitamin_c_mg" || obs[0].Amount != 28.1 {
			t.Errorf("obs[0] = %+v, want vitamin_c_mg 28.1", obs[0])
		}
		if obs[1].Nutrient != "iron_mg" || obs[1].Amount != 2.71 {
			t.Errorf("obs[1] = %+v, want iron_mg 2.71", obs[1])
		}
	})

	t.Run("multiple records concatenate record by record", func(t *testing.T) {
		two := append(records, domain.FoodRecord{
			Description: "Beef (Ground)",
			Nutrients:   map[string]float64{"iron_mg": 2.5},
		})
		obs := Reshape(two, keys)
		if len(obs) != 3 {
			t.Fatalf("len = %d, want 3", len(obs))
		}
		if obs[2].Nutrient != "iron_mg" || obs[2].Amount != 2.5 {
			t.Errorf("obs[2] = %+v, want the second record's iron", obs[2])
		}
	})

	t.Run("empty inputs yield empty output", func(t *testing.T) {
		if obs := Reshape(nil, keys); len(obs) != 0 {
			t.Errorf("Reshape(nil records) = %v, want empty", obs)
		}
		if obs := Reshape(records, nil); len(obs) != 0 {
			t.Errorf("Reshape(no keys) = %v, want empty", obs)
		}
	})
}
