package services

import (
	"fmt"
	"strings"

	"backend/models"
	"backend/utils"
)

// MealReasoning builds the short rationale shown with each meal: a fixed
// priority order of phrases drawn from the meal's temporal and metabolic
// context, truncated to three. Deterministic for identical inputs.
func MealReasoning(mealTime models.Clock, mealType models.MealType, user models.UserInputs) string {
	var reasons []string

	hoursSinceWake := utils.HoursSinceWaking(user.WakeTime, mealTime)
	sensitivity := utils.InsulinSensitivity(user.WakeTime, mealTime)
	hoursToSleep := float64(mealTime.MinutesUntil(user.SleepTime)) / 60

	switch {
	case hoursSinceWake < 1.5:
		reasons = append(reasons,
			"Post-wake cortisol clearing, high insulin sensitivity",
			"Hit leucine threshold to kickstart MPS")
	case sensitivity >= 0.9:
		reasons = append(reasons,
			"Peak circadian insulin sensitivity window",
			"Optimal time for carbohydrate intake")
	case sensitivity >= 0.7:
		reasons = append(reasons, "Good insulin sensitivity")
	case sensitivity <= 0.5:
		reasons = append(reasons, "Lower insulin sensitivity, carbs minimized")
	}

	switch mealType {
	case models.MealPreWorkout:
		if user.WorkoutTime != nil {
			minsToWorkout := mealTime.MinutesUntil(*user.WorkoutTime)
			reasons = append(reasons, fmt.Sprintf("%dmin pre-workout", minsToWorkout))
		}
		reasons = append(reasons,
			"Low fat for fast gastric emptying",
			"Carbs to top off muscle glycogen")
	case models.MealPostWorkout:
		reasons = append(reasons,
			"MPS peak window (1-4hr post-workout)",
			"Glycogen synthase elevated",
			"Largest protein bolus for maximum MPS")
	}

	if hoursToSleep > 0 && hoursToSleep <= 3.5 {
		reasons = append(reasons, "Pre-sleep protein supports overnight MPS")
		if hoursToSleep < 2.5 {
			reasons = append(reasons, "Reduced carbs to preserve sleep quality")
		}
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	if len(reasons) == 0 {
		return "Balanced meal timing"
	}
	return strings.Join(reasons, " ")
}
