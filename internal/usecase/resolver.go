package usecase

import (
	"regexp"
	"strings"

	"github.com/nutriscope/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var parenthesizedRegex = regexp.MustCompile(`\([^)]*\)`)

// FoodResolver resolves a user-supplied food name to records in the table
// using tiered matching. Each tier runs only when the previous one found
// nothing:
//
//  1. exact case-sensitive description match
//  2. case-insensitive literal substring match
//  3. same as 2 after stripping parenthesized segments from the query
//
// The query is always treated as literal text, never as a pattern, so
// user input cannot inject matching syntax.
type FoodResolver struct{}

// NewFoodResolver creates a new food resolver.
func NewFoodResolver() *FoodResolver {
	return &FoodResolver{}
}

// Resolve returns all records of the first tier that matches anything, in
// table order. An empty result is an expected outcome, not an error.
func (r *FoodResolver) Resolve(query string, table *NutrientTable) []domain.FoodRecord {
	if table == nil || table.Empty() {
		return nil
	}

	// tier 1: exact match
	var matches []domain.FoodRecord
	for _, rec := range table.Records() {
		if rec.Description == query {
			matches = append(matches, rec)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	// tier 2: case-insensitive substring
	if matches = substringMatches(strings.ToLower(query), table); len(matches) > 0 {
		return matches
	}

	// tier 3: strip parenthesized segments and retry
	stripped := strings.ToLower(strings.TrimSpace(parenthesizedRegex.ReplaceAllString(query, "")))
	if stripped == strings.ToLower(query) {
		return nil
	}
	return substringMatches(stripped, table)
}

func substringMatches(needle string, table *NutrientTable) []domain.FoodRecord {
	var matches []domain.FoodRecord
	for _, rec := range table.Records() {
		if strings.Contains(strings.ToLower(rec.Description), needle) {
			matches = append(matches, rec)
		}
	}
	return matches
}
