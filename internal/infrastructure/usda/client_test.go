package usda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nutriscope/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", 25)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.Equal(t, 25, client.pageSize)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestNewClient_DefaultPageSize(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", 0)
	assert.Equal(t, 50, client.pageSize)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", 0)

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestSearchFoods_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/foods/search", r.URL.Path)
		assert.Equal(t, "spinach", r.URL.Query().Get("query"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Foundation,SR Legacy", r.URL.Query().Get("dataType"))

		response := domain.USDASearchResponse{
			Foods: []domain.USDASearchFood{
				{FdcID: 168462, Description: "Spinach, raw", DataType: "SR Legacy"},
			},
			TotalHits: 1,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), "spinach")

	require.NoError(t, err)
	require.Len(t, result.Foods, 1)
	assert.Equal(t, 168462, result.Foods[0].FdcID)
	assert.Equal(t, "Spinach, raw", result.Foods[0].Description)
}

func TestSearchFoods_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), "nonexistent")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestSearchFoods_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(domain.USDASearchResponse{
			Foods: []domain.USDASearchFood{{FdcID: 1, Description: "Oats"}},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	result, err := client.SearchFoods(context.Background(), "oats")

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, result.Foods, 1)
}

func TestSearchFoods_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	_, err := client.SearchFoods(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrUSDAAPIFailure)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetFood_Success(t *testing.T) {
	amount := 2.71
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/food/168462", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))

		response := domain.USDAFoodDetail{
			FdcID:       168462,
			Description: "Spinach, raw",
			DataType:    "SR Legacy",
			FoodNutrients: []domain.USDAFoodNutrient{
				{Nutrient: domain.USDANutrientRef{Name: "Iron, Fe", UnitName: "mg"}, Amount: &amount},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	food, err := client.GetFood(context.Background(), 168462)

	require.NoError(t, err)
	assert.Equal(t, 168462, food.FdcID)
	require.Len(t, food.FoodNutrients, 1)
	require.NotNil(t, food.FoodNutrients[0].Amount)
	assert.Equal(t, 2.71, *food.FoodNutrients[0].Amount)
}

func TestGetFood_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	_, err := client.GetFood(context.Background(), 999999)

	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestSearchFoods_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 0)

	_, err := client.SearchFoods(context.Background(), "anything")

	assert.Error(t, err)
}
