package usecase

import (
	"github.com/nutriscope/backend/internal/domain"
	"github.com/nutriscope/backend/internal/guidelines"
)

// RequirementEvaluator classifies aggregated nutrient amounts against the
// guideline thresholds.
type RequirementEvaluator struct {
	registry *guidelines.Registry
}

// NewRequirementEvaluator creates an evaluator sharing the given registry.
func NewRequirementEvaluator(registry *guidelines.Registry) *RequirementEvaluator {
	return &RequirementEvaluator{registry: registry}
}

// Evaluate classifies every profile nutrient that has a guideline match.
// Amounts strictly below the RDA are below_minimum, amounts strictly above
// the upper limit are above_maximum, everything else is adequate; both
// boundaries are inclusive. Nutrients with no guideline match are omitted.
func (e *RequirementEvaluator) Evaluate(profile domain.NutrientProfile, sex domain.Sex) map[string]domain.NutrientStatus {
	statuses := make(map[string]domain.NutrientStatus)

	for nutrient, entry := range profile {
		matched := e.registry.MatchKey(nutrient)
		if matched == "" {
			continue
		}
		req, ok := e.registry.Get(matched, sex)
		if !ok {
			continue
		}

		status := domain.NutrientStatus{
			Amount: entry.TotalAmount,
			Min:    req.RDA,
			Max:    req.UpperLimit,
			Unit:   req.Unit,
		}
		switch {
		case req.RDA != nil && entry.TotalAmount < *req.RDA:
			status.Status = domain.StatusBelowMinimum
		case req.UpperLimit != nil && entry.TotalAmount > *req.UpperLimit:
			status.Status = domain.StatusAboveMaximum
		default:
			status.Status = domain.StatusAdequate
		}

		statuses[nutrient] = status
	}

	return statuses
}
