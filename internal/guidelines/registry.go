package guidelines

import (
	"strings"

	"github.com/nutriscope/backend/internal/domain"
)

// NutrientRequirement is one immutable reference record: official RDA values
// by sex plus the tolerable upper intake level. Nil means the guideline does
// not define that bound.
type NutrientRequirement struct {
	RDAMale    *float64
	RDAFemale  *float64
	UpperLimit *float64
	Unit       string
	Name       string
}

// Registry holds the canonical per-nutrient reference values and matches
// arbitrary nutrient column identifiers to canonical keys. Built once at
// startup and read-only afterward, so it is safe to share across goroutines.
type Registry struct {
	reqs map[string]NutrientRequirement
	keys []string
}

type entry struct {
	key string
	req NutrientRequirement
}

func f(v float64) *float64 { return &v }

// officialGuidelines lists RDA values for adults (19-70 years) from NIH/USDA
// Dietary Reference Intakes. Order matters: fuzzy key matching returns the
// first hit in this definition order.
var officialGuidelines = []entry{
	// vitamins (fat-soluble)
	{"vitamin_a_ug", NutrientRequirement{f(900), f(700), f(3000), "μg", "Vitamin A"}},
	{"vitamin_d_ug", NutrientRequirement{f(15), f(15), f(100), "μg", "Vitamin D"}},
	{"vitamin_e_mg", NutrientRequirement{f(15), f(15), f(1000), "mg", "Vitamin E"}},
	{"vitamin_k_ug", NutrientRequirement{f(120), f(90), nil, "μg", "Vitamin K"}},
	// vitamins (water-soluble)
	{"vitamin_c_mg", NutrientRequirement{f(90), f(75), f(2000), "mg", "Vitamin C"}},
	{"thiamin_mg", NutrientRequirement{f(1.2), f(1.1), nil, "mg", "Thiamin (B1)"}},
	{"riboflavin_mg", NutrientRequirement{f(1.3), f(1.1), nil, "mg", "Riboflavin (B2)"}},
	{"niacin_mg", NutrientRequirement{f(16), f(14), f(35), "mg", "Niacin (B3)"}},
	{"vitamin_b6_mg", NutrientRequirement{f(1.3), f(1.3), f(100), "mg", "Vitamin B6"}},
	{"folate_ug", NutrientRequirement{f(400), f(400), f(1000), "μg", "Folate"}},
	{"vitamin_b12_ug", NutrientRequirement{f(2.4), f(2.4), nil, "μg", "Vitamin B12"}},
	// minerals
	{"calcium_mg", NutrientRequirement{f(1000), f(1000), f(2500), "mg", "Calcium"}},
	{"iron_mg", NutrientRequirement{f(8), f(18), f(45), "mg", "Iron"}},
	{"magnesium_mg", NutrientRequirement{f(400), f(310), f(350), "mg", "Magnesium"}},
	{"phosphorus_mg", NutrientRequirement{f(700), f(700), f(4000), "mg", "Phosphorus"}},
	{"potassium_mg", NutrientRequirement{f(3400), f(2600), nil, "mg", "Potassium"}},
	{"sodium_mg", NutrientRequirement{f(1500), f(1500), f(2300), "mg", "Sodium"}},
	{"zinc_mg", NutrientRequirement{f(11), f(8), f(40), "mg", "Zinc"}},
	{"copper_mg", NutrientRequirement{f(0.9), f(0.9), f(10), "mg", "Copper"}},
	{"selenium_ug", NutrientRequirement{f(55), f(55), f(400), "μg", "Selenium"}},
	{"manganese_mg", NutrientRequirement{f(2.3), f(1.8), f(11), "mg", "Manganese"}},
	{"chromium_ug", NutrientRequirement{f(35), f(25), nil, "μg", "Chromium"}},
	{"molybdenum_ug", NutrientRequirement{f(45), f(45), f(2000), "μg", "Molybdenum"}},
	{"iodine_ug", NutrientRequirement{f(150), f(150), f(1100), "μg", "Iodine"}},
	// macronutrients (general guidelines)
	{"protein_g", NutrientRequirement{f(56), f(46), nil, "g", "Protein"}},
	{"fiber_g", NutrientRequirement{f(38), f(25), nil, "g", "Dietary Fiber"}},
	// limits for harmful nutrients
	{"saturated_fat_g", NutrientRequirement{nil, nil, f(20), "g", "Saturated Fat"}},
	{"cholesterol_mg", NutrientRequirement{nil, nil, f(300), "mg", "Cholesterol"}},
	{"sugars_g", NutrientRequirement{nil, nil, f(50), "g", "Added Sugars"}},
}

// NewRegistry builds the registry from the official guideline table.
func NewRegistry() *Registry {
	r := &Registry{
		reqs: make(map[string]NutrientRequirement, len(officialGuidelines)),
		keys: make([]string, 0, len(officialGuidelines)),
	}
	for _, e := range officialGuidelines {
		r.reqs[e.key] = e.req
		r.keys = append(r.keys, e.key)
	}
	return r
}

// Keys returns the canonical nutrient keys in definition order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Get returns the requirement view for a nutrient key, resolved for the given
// sex. For SexAverage the RDA is the mean of the male and female values when
// both are defined, the defined one when only one is, and nil when neither
// is. Unknown keys return false; that is an expected outcome, not an error.
func (r *Registry) Get(key string, sex domain.Sex) (domain.Requirement, bool) {
	req, ok := r.reqs[key]
	if !ok {
		return domain.Requirement{}, false
	}

	var rda *float64
	switch {
	case sex == domain.SexMale && req.RDAMale != nil:
		rda = req.RDAMale
	case sex == domain.SexFemale && req.RDAFemale != nil:
		rda = req.RDAFemale
	case req.RDAMale != nil && req.RDAFemale != nil:
		rda = f((*req.RDAMale + *req.RDAFemale) / 2)
	case req.RDAMale != nil:
		rda = req.RDAMale
	case req.RDAFemale != nil:
		rda = req.RDAFemale
	}

	return domain.Requirement{
		Name:       req.Name,
		RDA:        rda,
		UpperLimit: req.UpperLimit,
		Unit:       req.Unit,
		RDAMale:    req.RDAMale,
		RDAFemale:  req.RDAFemale,
	}, true
}

// MatchKey matches a nutrient column identifier from the food table to a
// canonical registry key. Exact matches win; otherwise a key matches when its
// first underscore-delimited segment appears (case-insensitively) in the
// identifier and the key with underscores stripped is a substring of the
// identifier with underscores stripped. The first matching key in definition
// order wins; "" means no match.
func (r *Registry) MatchKey(column string) string {
	if _, ok := r.reqs[column]; ok {
		return column
	}

	columnLower := strings.ToLower(column)
	columnStripped := strings.ReplaceAll(column, "_", "")

	for _, key := range r.keys {
		base := key
		if idx := strings.Index(key, "_"); idx > 0 {
			base = key[:idx]
		}
		if strings.Contains(columnLower, base) &&
			strings.Contains(columnStripped, strings.ReplaceAll(key, "_", "")) {
			return key
		}
	}

	return ""
}

// AllRequirements returns the requirement view for every registry key,
// resolved for the given sex, keyed by canonical nutrient key.
func (r *Registry) AllRequirements(sex domain.Sex) map[string]domain.Requirement {
	out := make(map[string]domain.Requirement, len(r.keys))
	for _, key := range r.keys {
		req, _ := r.Get(key, sex)
		out[key] = req
	}
	return out
}
