package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/nutriscope/backend/internal/domain"
)

func TestRank(t *testing.T) {
	ranker := NewNutrientRanker()
	table := testTable()

	t.Run("orders descending by per-ounce amount", func(t *testing.T) {
		ranked, err := ranker.Rank("iron", table, 10)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 3 {
			t.Fatalf("len = %d, want 3", len(ranked))
		}

		// tofu: 5.4 * 28.3495 / 50, spinach: 2.71 * 28.3495 / 100, beef: 2.5 * 28.3495 / 100
		wantOrder := []string{"Tofu (Firm)", "Spinach (Raw)", "Beef (Ground)"}
		for i, want := range wantOrder {
			if ranked[i].Description != want {
				t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Description, want)
			}
		}
		for i := 1; i < len(ranked); i++ {
			if ranked[i].AmountPerOunce > ranked[i-1].AmountPerOunce {
				t.Errorf("ranking not descending at %d", i)
			}
		}

		wantTofu := 5.4 * 28.3495 / 50
		if math.Abs(ranked[0].AmountPerOunce-wantTofu) > 1e-9 {
			t.Errorf("tofu per ounce = %v, want %v", ranked[0].AmountPerOunce, wantTofu)
		}
		if ranked[0].AmountPerServing != 5.4 {
			t.Errorf("tofu per serving = %v, want 5.4", ranked[0].AmountPerServing)
		}
	})

	t.Run("truncates to topN", func(t *testing.T) {
		ranked, err := ranker.Rank("iron", table, 2)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 2 {
			t.Errorf("len = %d, want 2", len(ranked))
		}
	})

	t.Run("topN zero yields empty", func(t *testing.T) {
		ranked, err := ranker.Rank("iron", table, 0)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 0 {
			t.Errorf("len = %d, want 0", len(ranked))
		}
	})

	t.Run("negative topN is a hard failure", func(t *testing.T) {
		_, err := ranker.Rank("iron", table, -1)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("excludes non-positive serving sizes", func(t *testing.T) {
		broken := NewNutrientTable([]domain.FoodRecord{
			{Description: "Good", ServingSize: 100, Nutrients: map[string]float64{"iron_mg": 1}},
			{Description: "Zero Serving", ServingSize: 0, Nutrients: map[string]float64{"iron_mg": 99}},
			{Description: "Negative Serving", ServingSize: -5, Nutrients: map[string]float64{"iron_mg": 99}},
		})

		ranked, err := ranker.Rank("iron", broken, 10)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 1 || ranked[0].Description != "Good" {
			t.Errorf("ranked = %v, want only Good", ranked)
		}
	})

	t.Run("excludes zero amounts", func(t *testing.T) {
		zeros := NewNutrientTable([]domain.FoodRecord{
			{Description: "Has Iron", ServingSize: 100, Nutrients: map[string]float64{"iron_mg": 1}},
			{Description: "No Iron", ServingSize: 100, Nutrients: map[string]float64{"protein_g": 10}},
		})

		ranked, err := ranker.Rank("iron", zeros, 10)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 1 || ranked[0].Description != "Has Iron" {
			t.Errorf("ranked = %v, want only Has Iron", ranked)
		}
	})

	t.Run("unknown nutrient yields empty", func(t *testing.T) {
		ranked, err := ranker.Rank("unobtainium", table, 10)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 0 {
			t.Errorf("len = %d, want 0", len(ranked))
		}
	})

	t.Run("ambiguous substring resolves to first column in table order", func(t *testing.T) {
		multi := NewNutrientTable([]domain.FoodRecord{
			{Description: "A", ServingSize: 100, Nutrients: map[string]float64{"vitamin_a_ug": 10, "vitamin_c_mg": 20}},
		})

		// sorted within the record: vitamin_a_ug precedes vitamin_c_mg
		ranked, err := ranker.Rank("vitamin", multi, 10)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 1 || ranked[0].AmountPerServing != 10 {
			t.Errorf("ranked = %v, want the vitamin_a_ug column", ranked)
		}
	})

	t.Run("empty table degrades to empty result", func(t *testing.T) {
		ranked, err := ranker.Rank("iron", NewNutrientTable(nil), 10)
		if err != nil {
			t.Fatalf("Rank() error = %v", err)
		}
		if len(ranked) != 0 {
			t.Errorf("len = %d, want 0", len(ranked))
		}
	})
}
