package domain

// Sex selects which RDA column applies when reading guideline values.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexAverage Sex = "average"
)

// ParseSex normalizes a user-supplied sex string, falling back to average.
func ParseSex(s string) Sex {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s)
	default:
		return SexAverage
	}
}

// FoodRecord is one cleaned row of the nutrient table: fixed metadata plus a
// dynamic map of nutrient column key -> amount per serving. Nutrient keys
// follow the "<name>_<unit>" convention (e.g. "iron_mg").
type FoodRecord struct {
	FdcID       int                `json:"fdcId"`
	Description string             `json:"description"`
	DataType    string             `json:"dataType"`
	ServingSize float64            `json:"servingSize"` // grams
	ServingUnit string             `json:"servingUnit"`
	Nutrients   map[string]float64 `json:"nutrients"`
}

// NutrientObservation is one (nutrient, amount) pair of the long-form view
// produced when a food's wide row is reshaped for display.
type NutrientObservation struct {
	Nutrient string  `json:"nutrient"`
	Amount   float64 `json:"amount"`
}

// RankedFood is one entry of a nutrient ranking. AmountPerOunce is the
// serving amount normalized to a 28.3495 g (one ounce) basis so foods with
// different serving sizes compare directly.
type RankedFood struct {
	Description      string  `json:"description"`
	AmountPerServing float64 `json:"amountPerServing"`
	AmountPerOunce   float64 `json:"amountPerOunce"`
}

// ProfileItem is one consumed food in a profile aggregation request.
type ProfileItem struct {
	Food        string  `json:"food" binding:"required"`
	AmountGrams float64 `json:"amountG" binding:"required"`
}

// ProfileEntry is the accumulated total for one nutrient. DailyValuePct is
// nil when the nutrient has no guideline match or the match carries no RDA.
type ProfileEntry struct {
	TotalAmount   float64  `json:"totalAmount"`
	DailyValuePct *float64 `json:"dailyValuePct,omitempty"`
}

// NutrientProfile maps nutrient key -> accumulated entry. Nutrients that
// never appeared on any matched food are absent, not zero.
type NutrientProfile map[string]ProfileEntry

// Requirement is the sex-resolved view of one guideline entry. RDA is nil
// when the nutrient has no recommended allowance (upper-limit-only entries).
type Requirement struct {
	Name       string   `json:"name"`
	RDA        *float64 `json:"rda,omitempty"`
	UpperLimit *float64 `json:"upperLimit,omitempty"`
	Unit       string   `json:"unit"`
	RDAMale    *float64 `json:"rdaMale,omitempty"`
	RDAFemale  *float64 `json:"rdaFemale,omitempty"`
}

// Requirement classification values.
const (
	StatusBelowMinimum = "below_minimum"
	StatusAboveMaximum = "above_maximum"
	StatusAdequate     = "adequate"
)

// NutrientStatus classifies one aggregated nutrient amount against its
// guideline thresholds. Min and Max mirror the RDA and upper limit and are
// nil when the guideline does not define them.
type NutrientStatus struct {
	Amount float64  `json:"amount"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Unit   string   `json:"unit"`
	Status string   `json:"status"`
}
