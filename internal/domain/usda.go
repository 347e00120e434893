package domain

// USDASearchResponse represents the response from the FDC search endpoint
type USDASearchResponse struct {
	Foods       []USDASearchFood `json:"foods"`
	TotalHits   int              `json:"totalHits"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
}

// USDASearchFood is one search hit; nutrient detail comes from a follow-up
// food lookup by FDC ID
type USDASearchFood struct {
	FdcID       int    `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType"`
}

// USDAFoodDetail represents the response from the FDC food detail endpoint
type USDAFoodDetail struct {
	FdcID         int                `json:"fdcId"`
	Description   string             `json:"description"`
	DataType      string             `json:"dataType"`
	FoodNutrients []USDAFoodNutrient `json:"foodNutrients"`
}

// USDAFoodNutrient is a single nutrient measurement from the detail endpoint.
// Amount is a pointer because the API omits it for some analytic rows.
type USDAFoodNutrient struct {
	Nutrient USDANutrientRef `json:"nutrient"`
	Amount   *float64        `json:"amount"`
}

// USDANutrientRef identifies the nutrient a measurement belongs to
type USDANutrientRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}
