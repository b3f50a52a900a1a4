package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

type calorieRequest struct {
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	BodyFatPct    float64 `json:"body_fat_pct"`
}

func (r calorieRequest) stats() (models.UserStats, error) {
	gender, err := models.ParseGender(r.Gender)
	if err != nil {
		return models.UserStats{}, err
	}
	level, err := models.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return models.UserStats{}, err
	}
	return models.UserStats{
		WeightKg:      r.WeightKg,
		HeightCm:      r.HeightCm,
		Age:           r.Age,
		Gender:        gender,
		ActivityLevel: level,
		BodyFatPct:    r.BodyFatPct,
	}, nil
}

// CalorieRecommendation returns BMR/TDEE/macros for one plan goal.
func CalorieRecommendation(c *gin.Context) {
	var req calorieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := req.stats()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := models.ParsePlanGoal(req.Goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.Recommend(stats, goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CalorieOptions returns a recommendation for every plan goal so the user
// can compare cut/maintain/bulk paths.
func CalorieOptions(c *gin.Context) {
	var req calorieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := req.stats()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options, err := services.AllGoalOptions(stats)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}
