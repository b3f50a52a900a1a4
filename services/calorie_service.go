package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"backend/models"
)

// Calorie calculator: Mifflin-St Jeor BMR (Katch-McArdle when body fat is
// known), activity-scaled TDEE, goal-adjusted targets and a goal-based
// macro split.

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityVeryActive: 1.725,
	models.ActivityExtreme:    1.9,
}

var planGoalAdjustments = map[models.PlanGoal]int{
	models.PlanLoseFast: -750,
	models.PlanLose:     -500,
	models.PlanLoseSlow: -250,
	models.PlanMaintain: 0,
	models.PlanGainSlow: 250,
	models.PlanGain:     500,
	models.PlanGainFast: 750,
}

var planGoalLabels = map[models.PlanGoal]string{
	models.PlanLoseFast: "Aggressive Cut (-0.75kg/week)",
	models.PlanLose:     "Moderate Cut (-0.5kg/week)",
	models.PlanLoseSlow: "Slow Cut (-0.25kg/week)",
	models.PlanMaintain: "Maintain Weight",
	models.PlanGainSlow: "Lean Bulk (+0.25kg/week)",
	models.PlanGain:     "Moderate Bulk (+0.5kg/week)",
	models.PlanGainFast: "Aggressive Bulk (+0.75kg/week)",
}

// BMR calculates basal metabolic rate with Mifflin-St Jeor.
func BMR(stats models.UserStats) float64 {
	bmr := 10*stats.WeightKg + 6.25*stats.HeightCm - 5*float64(stats.Age)
	if stats.Gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// BMRKatchMcArdle calculates BMR from lean body mass; more accurate when
// body fat percentage is known.
func BMRKatchMcArdle(weightKg, bodyFatPct float64) float64 {
	leanMass := weightKg * (1 - bodyFatPct/100)
	return 370 + 21.6*leanMass
}

// TDEE scales BMR by the activity multiplier.
func TDEE(bmr float64, level models.ActivityLevel) float64 {
	return bmr * activityMultipliers[level]
}

// BMI expects height in centimeters and weight in kilograms.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// goalMacros splits target calories by plan goal: more protein when cutting
// to preserve muscle, less fat when bulking to leave room for carbs.
func goalMacros(targetCalories int, weightKg float64, goal models.PlanGoal) (proteinG, carbsG, fatG int) {
	var proteinPerKg float64
	switch goal {
	case models.PlanLoseFast, models.PlanLose:
		proteinPerKg = 2.2
	case models.PlanLoseSlow:
		proteinPerKg = 2.0
	case models.PlanGain, models.PlanGainFast:
		proteinPerKg = 1.8
	default:
		proteinPerKg = 1.6
	}

	var fatPct float64
	switch goal {
	case models.PlanLoseFast, models.PlanLose, models.PlanLoseSlow:
		fatPct = 0.30
	case models.PlanGainFast, models.PlanGain:
		fatPct = 0.22
	default:
		fatPct = 0.25
	}

	proteinG = int(weightKg * proteinPerKg)
	fatCalories := float64(targetCalories) * fatPct
	fatG = int(fatCalories / 9)

	remaining := float64(targetCalories) - float64(proteinG*4) - fatCalories
	carbsG = int(math.Max(0, remaining/4))
	return proteinG, carbsG, fatG
}

// Recommend computes the full calorie/macro recommendation for one plan
// goal. The goal is a parameter, never state: repeated calls share nothing.
func Recommend(stats models.UserStats, goal models.PlanGoal) (models.CalorieRecommendation, error) {
	if _, ok := planGoalAdjustments[goal]; !ok {
		return models.CalorieRecommendation{}, fmt.Errorf("unknown plan goal %q", goal)
	}
	if _, ok := activityMultipliers[stats.ActivityLevel]; !ok {
		return models.CalorieRecommendation{}, fmt.Errorf("unknown activity level %q", stats.ActivityLevel)
	}

	bmi, err := BMI(stats.HeightCm, stats.WeightKg)
	if err != nil {
		return models.CalorieRecommendation{}, err
	}

	var bmr float64
	if stats.BodyFatPct > 0 {
		bmr = BMRKatchMcArdle(stats.WeightKg, stats.BodyFatPct)
	} else {
		bmr = BMR(stats)
	}

	tdee := TDEE(bmr, stats.ActivityLevel)
	adjustment := planGoalAdjustments[goal]
	targetCalories := int(tdee) + adjustment

	// Health floor.
	minCalories := 1500
	if stats.Gender == models.GenderFemale {
		minCalories = 1200
	}
	if targetCalories < minCalories {
		targetCalories = minCalories
	}

	proteinG, carbsG, fatG := goalMacros(targetCalories, stats.WeightKg, goal)

	totalMacroCals := float64(models.CaloriesFromMacros(proteinG, carbsG, fatG))
	var proteinPct, carbsPct, fatPct int
	if totalMacroCals > 0 {
		proteinPct = int(float64(proteinG*4) / totalMacroCals * 100)
		carbsPct = int(float64(carbsG*4) / totalMacroCals * 100)
		fatPct = int(float64(fatG*9) / totalMacroCals * 100)
	}

	// 7700 kcal per kg of body weight change.
	weeklyChangeKg := math.Round(float64(adjustment*7)/7700*100) / 100

	return models.CalorieRecommendation{
		BMR:            int(bmr),
		TDEE:           int(tdee),
		TargetCalories: targetCalories,
		ProteinG:       proteinG,
		CarbsG:         carbsG,
		FatG:           fatG,
		ProteinPct:     proteinPct,
		CarbsPct:       carbsPct,
		FatPct:         fatPct,
		WeeklyChangeKg: weeklyChangeKg,
		BMI:            math.Round(bmi*10) / 10,
		BMICategory:    BMICategory(bmi),
		Explanation:    explain(stats, int(bmr), int(tdee), adjustment, weeklyChangeKg),
	}, nil
}

// GoalOption is one row of the goal comparison table.
type GoalOption struct {
	Goal           models.PlanGoal `json:"goal"`
	Label          string          `json:"label"`
	Calories       int             `json:"calories"`
	ProteinG       int             `json:"protein_g"`
	CarbsG         int             `json:"carbs_g"`
	FatG           int             `json:"fat_g"`
	WeeklyChangeKg float64         `json:"weekly_change_kg"`
}

// AllGoalOptions computes a recommendation per plan goal so the user can
// compare paths. Each call to Recommend is independent; stats is never
// mutated.
func AllGoalOptions(stats models.UserStats) ([]GoalOption, error) {
	options := make([]GoalOption, 0, len(models.PlanGoals))
	for _, goal := range models.PlanGoals {
		rec, err := Recommend(stats, goal)
		if err != nil {
			return nil, err
		}
		options = append(options, GoalOption{
			Goal:           goal,
			Label:          planGoalLabels[goal],
			Calories:       rec.TargetCalories,
			ProteinG:       rec.ProteinG,
			CarbsG:         rec.CarbsG,
			FatG:           rec.FatG,
			WeeklyChangeKg: rec.WeeklyChangeKg,
		})
	}
	return options, nil
}

func explain(stats models.UserStats, bmr, tdee, adjustment int, weeklyChange float64) string {
	lines := []string{
		fmt.Sprintf("Your BMR (calories burned at rest): %d cal", bmr),
		fmt.Sprintf("Your TDEE (with %s activity): %d cal",
			strings.ReplaceAll(string(stats.ActivityLevel), "_", " "), tdee),
	}

	switch {
	case adjustment < 0:
		lines = append(lines,
			fmt.Sprintf("Deficit of %d cal/day for fat loss", -adjustment),
			fmt.Sprintf("Expected loss: ~%.1f kg/week (%.1f lbs)", -weeklyChange, -weeklyChange*2.2))
	case adjustment > 0:
		lines = append(lines,
			fmt.Sprintf("Surplus of %d cal/day for muscle gain", adjustment),
			fmt.Sprintf("Expected gain: ~%.1f kg/week (%.1f lbs)", weeklyChange, weeklyChange*2.2))
	default:
		lines = append(lines, "Eating at maintenance to maintain weight")
	}

	out := lines[0]
	for _, l := range lines[1:] {
		out += " | " + l
	}
	return out
}
