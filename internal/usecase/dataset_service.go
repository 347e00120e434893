package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nutriscope/backend/internal/domain"
	"github.com/nutriscope/backend/internal/infrastructure/usda"
)

// CommonFoodQueries is the default staple-food query list used to build the
// dataset when no snapshot exists.
var CommonFoodQueries = []string{
	"apple", "banana", "orange", "strawberry", "grapes",
	"carrot", "broccoli", "spinach", "potato", "tomato",
	"chicken", "beef", "pork", "fish", "egg",
	"milk", "cheese", "yogurt", "bread", "rice",
	"beans", "nuts", "almonds", "peanuts", "oatmeal",
}

// DatasetServiceConfig holds configuration for the dataset service.
type DatasetServiceConfig struct {
	Queries         []string
	ResultsPerQuery int
	CacheTTL        time.Duration
}

// DatasetService builds the nutrient table: it loads the persisted snapshot
// when one exists and otherwise fetches the common-foods dataset from the
// USDA API, maps it to wide records, and persists the cleaned result.
type DatasetService struct {
	store           domain.DatasetStore
	client          domain.USDAClient
	cache           domain.SearchCache
	queries         []string
	resultsPerQuery int
	cacheTTL        time.Duration
}

// NewDatasetService creates a dataset service. store and cache may be nil,
// in which case snapshots and search caching are skipped.
func NewDatasetService(store domain.DatasetStore, client domain.USDAClient, cache domain.SearchCache, config DatasetServiceConfig) *DatasetService {
	queries := config.Queries
	if len(queries) == 0 {
		queries = CommonFoodQueries
	}

	perQuery := config.ResultsPerQuery
	if perQuery <= 0 {
		perQuery = 3
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour
	}

	return &DatasetService{
		store:           store,
		client:          client,
		cache:           cache,
		queries:         queries,
		resultsPerQuery: perQuery,
		cacheTTL:        cacheTTL,
	}
}

// LoadTable returns the cleaned nutrient table. Fetch failures for
// individual queries are logged and skipped; an entirely empty dataset is a
// valid degraded state, not an error, so every downstream query simply
// returns empty results.
func (s *DatasetService) LoadTable(ctx context.Context) (*NutrientTable, error) {
	if s.store != nil {
		records, err := s.store.Load(ctx)
		switch {
		case err == nil && len(records) > 0:
			log.Printf("[DATASET] Loaded snapshot with %d records", len(records))
			return NewNutrientTable(records), nil
		case err != nil && !errors.Is(err, domain.ErrNoSnapshot):
			log.Printf("[DATASET] Snapshot load failed, refetching: %v", err)
		}
	}

	if s.client == nil {
		log.Printf("[DATASET] No USDA client configured; starting with an empty table")
		return NewNutrientTable(nil), nil
	}

	records := s.fetchCommonFoods(ctx)
	table := NewNutrientTable(records)

	if s.store != nil && !table.Empty() {
		if err := s.store.Save(ctx, table.Records()); err != nil {
			log.Printf("[DATASET] Failed to persist snapshot: %v", err)
		}
	}

	log.Printf("[DATASET] Built table with %d records, %d nutrient columns", table.Len(), len(table.NutrientKeys()))
	return table, nil
}

// fetchCommonFoods runs the staple query list, taking the top results of
// each and pulling full nutrient detail per food.
func (s *DatasetService) fetchCommonFoods(ctx context.Context) []domain.FoodRecord {
	var records []domain.FoodRecord

	for _, query := range s.queries {
		if ctx.Err() != nil {
			log.Printf("[DATASET] Fetch cancelled: %v", ctx.Err())
			break
		}

		search, err := s.searchWithCache(ctx, query)
		if err != nil {
			log.Printf("[DATASET] Search failed for %q: %v", query, err)
			continue
		}

		count := 0
		for _, food := range search.Foods {
			if count >= s.resultsPerQuery {
				break
			}
			detail, err := s.client.GetFood(ctx, food.FdcID)
			if err != nil {
				log.Printf("[DATASET] Detail fetch failed for %q (fdc %d): %v", food.Description, food.FdcID, err)
				continue
			}
			records = append(records, usda.MapFoodRecord(detail))
			count++
		}
	}

	return records
}

func (s *DatasetService) searchWithCache(ctx context.Context, query string) (*domain.USDASearchResponse, error) {
	key := searchCacheKey(query)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	resp, err := s.client.SearchFoods(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
			log.Printf("[DATASET] Cache write failed for %q: %v", query, err)
		}
	}

	return resp, nil
}

func searchCacheKey(query string) string {
	return fmt.Sprintf("search:%s", strings.ToLower(strings.TrimSpace(query)))
}
