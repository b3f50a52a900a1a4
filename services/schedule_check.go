package services

import (
	"fmt"

	"backend/models"
)

// WarningSeverity categorizes how serious a scheduling finding is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured, non-fatal finding about a generated schedule.
// The engine always returns a schedule; warnings travel alongside it.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	Metric   string          `json:"metric,omitempty"`
	Value    float64         `json:"value,omitempty"`
	Limit    float64         `json:"limit,omitempty"`
}

// CheckSchedule validates a placed schedule against the spacing and timing
// constraints. Violations are reported, never enforced: workout timing can
// make a perfectly spaced day impossible.
func CheckSchedule(meals []models.PlacedMeal, user models.UserInputs) []Warning {
	warnings := []Warning{}

	if len(meals) < user.NumMeals {
		warnings = append(warnings, Warning{
			Code:     "meal_count_short",
			Severity: Caution,
			Message: fmt.Sprintf("Only %d of %d requested meals fit the eating window with %d min spacing.",
				len(meals), user.NumMeals, MinMealGapMin),
			Metric: "meals_placed",
			Value:  float64(len(meals)),
			Limit:  float64(user.NumMeals),
		})
	}

	for i := 0; i < len(meals)-1; i++ {
		gap := meals[i].Time.MinutesUntil(meals[i+1].Time)
		if gap < MinMealGapMin {
			warnings = append(warnings, Warning{
				Code:     "gap_too_short",
				Severity: Caution,
				Message:  fmt.Sprintf("Meals %d and %d are only %d min apart (minimum %d).", i+1, i+2, gap, MinMealGapMin),
				Metric:   "gap_min",
				Value:    float64(gap),
				Limit:    MinMealGapMin,
			})
		}
		if gap > MaxMealGapMin {
			warnings = append(warnings, Warning{
				Code:     "gap_too_long",
				Severity: Info,
				Message:  fmt.Sprintf("Gap between meals %d and %d is %d min (maximum %d).", i+1, i+2, gap, MaxMealGapMin),
				Metric:   "gap_min",
				Value:    float64(gap),
				Limit:    MaxMealGapMin,
			})
		}
	}

	for i, m := range meals {
		minsToSleep := m.Time.MinutesUntil(user.SleepTime)
		if minsToSleep > 0 && minsToSleep < 120 {
			warnings = append(warnings, Warning{
				Code:     "meal_near_sleep",
				Severity: Caution,
				Message:  fmt.Sprintf("Meal %d is within 2 hours of sleep time.", i+1),
				Metric:   "mins_to_sleep",
				Value:    float64(minsToSleep),
				Limit:    120,
			})
		}
	}

	if user.WorkoutTime != nil {
		for i, m := range meals {
			minsToWorkout := m.Time.MinutesUntil(*user.WorkoutTime)
			if minsToWorkout > 0 && minsToWorkout < 30 {
				warnings = append(warnings, Warning{
					Code:     "meal_near_workout",
					Severity: High,
					Message:  fmt.Sprintf("Meal %d is within 30 minutes of workout start.", i+1),
					Metric:   "mins_to_workout",
					Value:    float64(minsToWorkout),
					Limit:    30,
				})
			}
		}
	}

	return warnings
}
