package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/nutriscope/backend/internal/domain"
)

// RankingWorkbook builds a spreadsheet listing foods ranked by their
// per-ounce content of a nutrient.
func RankingWorkbook(nutrient string, ranked []domain.RankedFood) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{"Rank", "Food", fmt.Sprintf("%s per serving", nutrient), fmt.Sprintf("%s per ounce", nutrient)}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, food := range ranked {
		row := []interface{}{i + 1, food.Description, food.AmountPerServing, food.AmountPerOunce}
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cellAddr, row); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}
	return f, nil
}

// ProfileWorkbook builds a spreadsheet of an aggregated nutrient profile,
// one row per nutrient with its daily value percentage and requirement
// status when available. Rows are sorted by nutrient key for stable output.
func ProfileWorkbook(profile domain.NutrientProfile, statuses map[string]domain.NutrientStatus) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{"Nutrient", "Total Amount", "Daily Value %", "Status"}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(profile))
	for key := range profile {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		entry := profile[key]

		dv := ""
		if entry.DailyValuePct != nil {
			dv = fmt.Sprintf("%.1f", *entry.DailyValuePct)
		}
		status := ""
		if s, ok := statuses[key]; ok {
			status = s.Status
		}

		row := []interface{}{key, entry.TotalAmount, dv, status}
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cellAddr, row); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}
	return f, nil
}
