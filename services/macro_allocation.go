package services

import (
	"math"

	"backend/models"
	"backend/utils"
)

// Macro allocation: distributes the daily protein/carb/fat budget across
// placed meals, weighting carbs by circadian insulin sensitivity, boosting
// post-workout protein into the MPS peak, and trimming pre-workout fat and
// pre-sleep carbs. The per-macro sums always reconcile exactly to the daily
// targets.

// AllocateMacros assigns macros to each placed meal, in order. Every meal
// except the last is scaled and rounded; the last meal takes the exact
// remainder so rounding drift never leaks into the daily totals. The 25g
// protein floor deliberately does not apply to that remainder meal.
func AllocateMacros(meals []models.PlacedMeal, user models.UserInputs) []models.MealMacros {
	numMeals := len(meals)
	if numMeals == 0 {
		return nil
	}

	baseProtein := float64(user.DailyProteinG) / float64(numMeals)
	baseCarbs := float64(user.DailyCarbsG) / float64(numMeals)
	baseFat := float64(user.DailyFatG) / float64(numMeals)

	type rawAlloc struct {
		protein, carbs, fat float64
	}
	raw := make([]rawAlloc, 0, numMeals)

	for _, meal := range meals {
		protein := baseProtein
		fat := baseFat

		sensitivity := utils.InsulinSensitivity(user.WakeTime, meal.Time)
		hoursToSleep := float64(meal.Time.MinutesUntil(user.SleepTime)) / 60

		if meal.Type == models.MealPostWorkout && user.WorkoutType != models.WorkoutNone {
			protein = float64(utils.PostWorkoutProtein(int(baseProtein), user.WorkoutType))
		}

		// Carbs ride the circadian sensitivity curve, normalized around the
		// moderate band.
		carbs := baseCarbs * (sensitivity / 0.7)

		if meal.Type == models.MealPreWorkout {
			carbs *= 1.2
			fat = baseFat * 0.5 // faster gastric emptying
		}

		if hoursToSleep > 0 && hoursToSleep <= 3 {
			// Pre-sleep: reduce carbs for sleep quality, keep protein
			// moderate for overnight MPS. Overrides the pre-workout bump.
			carbs = baseCarbs * 0.6
			protein = math.Min(protein, 35)
		}

		raw = append(raw, rawAlloc{protein: protein, carbs: carbs, fat: fat})
	}

	var totalProtein, totalCarbs, totalFat float64
	for _, a := range raw {
		totalProtein += a.protein
		totalCarbs += a.carbs
		totalFat += a.fat
	}

	scale := func(target int, total float64) float64 {
		if total <= 0 {
			return 1
		}
		return float64(target) / total
	}
	proteinScale := scale(user.DailyProteinG, totalProtein)
	carbsScale := scale(user.DailyCarbsG, totalCarbs)
	fatScale := scale(user.DailyFatG, totalFat)

	out := make([]models.MealMacros, 0, numMeals)
	var runningProtein, runningCarbs, runningFat int

	for i, a := range raw {
		var protein, carbs, fat int
		if i == numMeals-1 {
			// Exact remainder: guarantees the daily totals regardless of
			// rounding in the earlier meals.
			protein = user.DailyProteinG - runningProtein
			carbs = user.DailyCarbsG - runningCarbs
			fat = user.DailyFatG - runningFat
		} else {
			protein = int(math.Round(a.protein * proteinScale))
			carbs = int(math.Round(a.carbs * carbsScale))
			fat = int(math.Round(a.fat * fatScale))
			if protein < utils.MinProteinPerMeal {
				protein = utils.MinProteinPerMeal
			}
		}

		runningProtein += protein
		runningCarbs += carbs
		runningFat += fat

		out = append(out, models.MealMacros{
			ProteinG: protein,
			CarbsG:   carbs,
			FatG:     fat,
			Calories: models.CaloriesFromMacros(protein, carbs, fat),
		})
	}

	return out
}
