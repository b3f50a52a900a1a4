package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

// GenerateSchedule builds a full day's meal schedule from the request body.
// Validation problems come back as one structured failure; constraint
// warnings ride alongside a still-valid schedule.
func GenerateSchedule(c *gin.Context) {
	var req services.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, warnings, err := services.GenerateScheduleFromRequest(req)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "issues": verr.Issues})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals":    schedule.Meals,
		"warnings": warnings,
		"totals": gin.H{
			"calories": schedule.TotalCalories(),
			"protein":  schedule.TotalProtein(),
			"carbs":    schedule.TotalCarbs(),
			"fat":      schedule.TotalFat(),
		},
	})
}

type suggestionRequest struct {
	services.ScheduleRequest
	Groceries []string `json:"groceries"`
}

// ScheduleSuggestions generates a schedule and pairs each meal with a food
// suggestion composed from the user's grocery list.
func ScheduleSuggestions(lookup services.NutritionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req suggestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		schedule, warnings, err := services.GenerateScheduleFromRequest(req.ScheduleRequest)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "issues": verr.Issues})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		suggestionSvc := services.NewSuggestionService(lookup)
		suggestions := suggestionSvc.SuggestMeals(schedule.Meals, req.Groceries)

		type mealWithSuggestion struct {
			models.ScheduledMeal
			Suggestion string `json:"suggestion"`
		}
		meals := make([]mealWithSuggestion, len(schedule.Meals))
		for i, m := range schedule.Meals {
			meals[i] = mealWithSuggestion{ScheduledMeal: m, Suggestion: suggestions[i]}
		}

		c.JSON(http.StatusOK, gin.H{
			"meals":    meals,
			"warnings": warnings,
			"totals": gin.H{
				"calories": schedule.TotalCalories(),
				"protein":  schedule.TotalProtein(),
				"carbs":    schedule.TotalCarbs(),
				"fat":      schedule.TotalFat(),
			},
		})
	}
}
