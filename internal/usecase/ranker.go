package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nutriscope/backend/internal/domain"
)

// GramsPerOunce is the common-unit basis used to compare foods independent
// of their serving sizes.
const GramsPerOunce = 28.3495

// NutrientRanker ranks foods by their content of a chosen nutrient,
// normalized to a per-ounce basis.
type NutrientRanker struct{}

// NewNutrientRanker creates a new nutrient ranker.
func NewNutrientRanker() *NutrientRanker {
	return &NutrientRanker{}
}

// Rank returns up to topN foods ordered descending by per-ounce amount of
// the first nutrient column containing substring (case-insensitive). When
// the substring is ambiguous the first column in table order wins; callers
// that care should pass a full column key. Records with a non-positive
// serving size are data errors and are excluded rather than divided by.
//
// No matching column or an empty table yields an empty result. A negative
// topN is the one hard failure.
func (r *NutrientRanker) Rank(substring string, table *NutrientTable, topN int) ([]domain.RankedFood, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", domain.ErrInvalidRequest, topN)
	}
	if table == nil || table.Empty() || topN == 0 {
		return nil, nil
	}

	column := ""
	lowered := strings.ToLower(substring)
	for _, key := range table.NutrientKeys() {
		if strings.Contains(strings.ToLower(key), lowered) {
			column = key
			break
		}
	}
	if column == "" {
		return nil, nil
	}

	var ranked []domain.RankedFood
	for _, rec := range table.Records() {
		amount := rec.Nutrients[column]
		if amount <= 0 || rec.ServingSize <= 0 {
			continue
		}
		ranked = append(ranked, domain.RankedFood{
			Description:      rec.Description,
			AmountPerServing: amount,
			AmountPerOunce:   amount * GramsPerOunce / rec.ServingSize,
		})
	}

	// stable: ties keep table order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AmountPerOunce > ranked[j].AmountPerOunce
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}
