package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutriscope/backend/internal/domain"
	"github.com/nutriscope/backend/internal/export"
	"github.com/nutriscope/backend/internal/guidelines"
	"github.com/nutriscope/backend/internal/usecase"
)

const defaultTopN = 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	table      *usecase.NutrientTable
	registry   *guidelines.Registry
	resolver   *usecase.FoodResolver
	ranker     *usecase.NutrientRanker
	aggregator *usecase.ProfileAggregator
	evaluator  *usecase.RequirementEvaluator
}

// NewHandler creates a new HTTP handler sharing the read-only table and
// registry built at startup.
func NewHandler(table *usecase.NutrientTable, registry *guidelines.Registry) *Handler {
	return &Handler{
		table:      table,
		registry:   registry,
		resolver:   usecase.NewFoodResolver(),
		ranker:     usecase.NewNutrientRanker(),
		aggregator: usecase.NewProfileAggregator(registry),
		evaluator:  usecase.NewRequirementEvaluator(registry),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutriscope-backend",
		"version": "1.0.0",
		"foods":   h.table.Len(),
	})
}

// ListNutrients returns all nutrient column keys in table order
func (h *Handler) ListNutrients(c *gin.Context) {
	keys := h.table.NutrientKeys()

	nutrients := make([]gin.H, 0, len(keys))
	for _, key := range keys {
		nutrients = append(nutrients, gin.H{
			"key":         key,
			"displayName": FormatNutrientName(key),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(nutrients),
		"nutrients": nutrients,
	})
}

// nutrientView is one long-form observation prepared for display
type nutrientView struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"displayName"`
	Amount      float64 `json:"amount"`
}

// FoodNutrients resolves a food query and returns its long-form nutrient
// view, grouped into vitamins, minerals, and macronutrients.
func (h *Handler) FoodNutrients(c *gin.Context) {
	query := c.Param("query")

	matches := h.resolver.Resolve(query, h.table)
	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no food matching %q", query)})
		return
	}

	observations := usecase.Reshape(matches, h.table.NutrientKeys())

	nutrients := make([]nutrientView, 0, len(observations))
	categories := map[string][]nutrientView{
		"vitamins":       {},
		"minerals":       {},
		"macronutrients": {},
	}
	for _, obs := range observations {
		view := nutrientView{
			Key:         obs.Nutrient,
			DisplayName: FormatNutrientName(obs.Nutrient),
			Amount:      obs.Amount,
		}
		nutrients = append(nutrients, view)
		if cat := categorize(obs.Nutrient); cat != "" {
			categories[cat] = append(categories[cat], view)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":      query,
		"matches":    foodDescriptions(matches),
		"nutrients":  nutrients,
		"categories": categories,
	})
}

// TopFoods ranks foods by per-ounce content of a nutrient
func (h *Handler) TopFoods(c *gin.Context) {
	ranked, nutrient, ok := h.rankFromRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nutrient": nutrient,
		"count":    len(ranked),
		"foods":    ranked,
	})
}

// ExportTopFoods streams the nutrient ranking as an xlsx workbook
func (h *Handler) ExportTopFoods(c *gin.Context) {
	ranked, nutrient, ok := h.rankFromRequest(c)
	if !ok {
		return
	}

	f, err := export.RankingWorkbook(nutrient, ranked)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="top_%s.xlsx"`, nutrient))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// rankFromRequest parses the nutrient path param and limit query param and
// runs the ranker. On invalid input it writes the error response and returns
// ok=false.
func (h *Handler) rankFromRequest(c *gin.Context) ([]domain.RankedFood, string, bool) {
	nutrient := c.Param("nutrient")

	limit := defaultTopN
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid limit %q", raw)})
			return nil, "", false
		}
		limit = parsed
	}

	ranked, err := h.ranker.Rank(nutrient, h.table, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}

	return ranked, nutrient, true
}

// profileRequest is the body of the profile endpoints
type profileRequest struct {
	Items []domain.ProfileItem `json:"items" binding:"required,min=1,dive"`
	Sex   string               `json:"sex"`
}

// AggregateProfile combines consumed foods into one nutrient profile
func (h *Handler) AggregateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sex := domain.ParseSex(req.Sex)
	profile := h.aggregator.Aggregate(req.Items, h.table, sex)

	c.JSON(http.StatusOK, gin.H{
		"sex":     sex,
		"profile": profile,
	})
}

// EvaluateProfile aggregates consumed foods and classifies the totals
// against the dietary guidelines
func (h *Handler) EvaluateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sex := domain.ParseSex(req.Sex)
	profile := h.aggregator.Aggregate(req.Items, h.table, sex)
	statuses := h.evaluator.Evaluate(profile, sex)

	c.JSON(http.StatusOK, gin.H{
		"sex":      sex,
		"profile":  profile,
		"statuses": statuses,
	})
}

// ExportProfile aggregates and evaluates consumed foods and streams the
// result as an xlsx workbook
func (h *Handler) ExportProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sex := domain.ParseSex(req.Sex)
	profile := h.aggregator.Aggregate(req.Items, h.table, sex)
	statuses := h.evaluator.Evaluate(profile, sex)

	f, err := export.ProfileWorkbook(profile, statuses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="nutrient_profile.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// Guidelines returns the full guideline registry resolved for a sex.
// ?format=export returns the five-field serialization instead.
func (h *Handler) Guidelines(c *gin.Context) {
	if c.Query("format") == "export" {
		data, err := h.registry.ExportJSON()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export guidelines"})
			return
		}
		c.Data(http.StatusOK, "application/json", data)
		return
	}

	sex := domain.ParseSex(c.Query("sex"))
	c.JSON(http.StatusOK, gin.H{
		"sex":          sex,
		"requirements": h.registry.AllRequirements(sex),
	})
}

func foodDescriptions(records []domain.FoodRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Description
	}
	return out
}
