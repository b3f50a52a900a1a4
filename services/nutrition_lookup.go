package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backend/models"
)

// EdamamService resolves free-text grocery items to per-100g nutritional
// density via the Edamam Food Database API.
type EdamamService struct {
	appID  string
	appKey string
	client *http.Client
}

func NewEdamamService(appID, appKey string) *EdamamService {
	return &EdamamService{
		appID:  appID,
		appKey: appKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether API credentials are present.
func (s *EdamamService) Configured() bool {
	return s.appID != "" && s.appKey != ""
}

type parserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string `json:"foodId"`
			Label     string `json:"label"`
			Category  string `json:"category"`
			Nutrients struct {
				Energy  float64 `json:"ENERC_KCAL"`
				Protein float64 `json:"PROCNT"`
				Fat     float64 `json:"FAT"`
				Carbs   float64 `json:"CHOCDF"`
			} `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

// LookupGrocery queries the Edamam parser endpoint and maps the top hit to
// a FoodItem. Parser nutrient values are already per 100g.
func (s *EdamamService) LookupGrocery(item string) (*models.FoodItem, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("edamam credentials not configured")
	}

	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(item), s.appID, s.appKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Edamam response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr parserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Edamam JSON: %w", err)
	}
	if len(pr.Hints) == 0 {
		return nil, fmt.Errorf("no match for %q", item)
	}

	hit := pr.Hints[0].Food
	return &models.FoodItem{
		Name:            strings.ToLower(hit.Label),
		ProteinPer100g:  hit.Nutrients.Protein,
		CarbsPer100g:    hit.Nutrients.Carbs,
		FatPer100g:      hit.Nutrients.Fat,
		CaloriesPer100g: hit.Nutrients.Energy,
		TypicalServingG: 100,
		Category:        classifyByMacros(hit.Nutrients.Protein, hit.Nutrients.Carbs, hit.Nutrients.Fat, hit.Nutrients.Energy),
	}, nil
}

// classifyByMacros buckets an unknown food by its dominant macro so the
// suggestion engine can slot it alongside the built-in table.
func classifyByMacros(protein, carbs, fat, calories float64) models.FoodCategory {
	if calories > 0 && calories < 50 {
		return models.CategoryVegetable
	}
	proteinCals := protein * 4
	carbCals := carbs * 4
	fatCals := fat * 9
	switch {
	case proteinCals >= carbCals && proteinCals >= fatCals:
		return models.CategoryProtein
	case carbCals >= fatCals:
		return models.CategoryCarb
	default:
		return models.CategoryFat
	}
}
