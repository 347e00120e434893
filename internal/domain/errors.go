package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrFoodNotFound is returned when the USDA API has no data for a food
	ErrFoodNotFound = errors.New("food not found in USDA database")

	// ErrUSDAAPIFailure is returned when a USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrNoSnapshot is returned when the dataset store holds no snapshot yet
	ErrNoSnapshot = errors.New("no dataset snapshot")
)
