package domain

import (
	"context"
	"time"
)

// USDAClient defines the interface for the USDA FoodData Central API
type USDAClient interface {
	SearchFoods(ctx context.Context, query string) (*USDASearchResponse, error)
	GetFood(ctx context.Context, fdcID int) (*USDAFoodDetail, error)
}

// SearchCache caches raw FDC search responses so the dataset build does not
// re-query the API for staples it has already seen
type SearchCache interface {
	Get(ctx context.Context, key string) (*USDASearchResponse, error)
	Set(ctx context.Context, key string, value *USDASearchResponse, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DatasetStore persists the cleaned food table between runs. Load returns
// ErrNoSnapshot when nothing has been saved yet.
type DatasetStore interface {
	Load(ctx context.Context) ([]FoodRecord, error)
	Save(ctx context.Context, records []FoodRecord) error
	Close() error
}
