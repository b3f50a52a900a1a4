package services

import (
	"sort"

	"backend/models"
)

// Meal timing engine: places meals on the daily timeline around fixed
// biological anchors, per the ISSN nutrient-timing position stand
// (Kerksick et al. 2017).

// Anchor offsets are the midpoints of the literature ranges; the ranges
// themselves are the contract (30-60min post-wake, 2.5-3h pre-sleep,
// 1.5-2h pre-workout, 60-90min post-workout-end).
const (
	FirstMealOffsetMin   = 45
	LastMealOffsetMin    = -165
	PreWorkoutOffsetMin  = -105
	PostWorkoutOffsetMin = 75

	// MinMealGapMin and MaxMealGapMin bound the spacing between meals.
	// MaxMealGapMin is checked after placement, not enforced during it.
	MinMealGapMin = 150
	MaxMealGapMin = 300

	// Eating window bounds relative to wake and sleep.
	WindowStartOffsetMin = 30
	WindowEndOffsetMin   = -120
)

// CalculateAnchorPoints derives the fixed meal times for a user: first meal
// after the cortisol awakening response clears, last meal far enough before
// sleep to digest, and pre/post-workout meals on training days. Post-workout
// carries the highest priority and is never dropped in trimming.
func CalculateAnchorPoints(user models.UserInputs) []models.AnchorPoint {
	anchors := []models.AnchorPoint{
		{
			Time:     user.WakeTime.Add(FirstMealOffsetMin),
			Type:     models.MealBreakfast,
			Priority: 3,
		},
		{
			Time:     user.SleepTime.Add(LastMealOffsetMin),
			Type:     models.MealDinner,
			Priority: 3,
		},
	}

	if user.WorkoutTime != nil {
		anchors = append(anchors, models.AnchorPoint{
			Time:     user.WorkoutTime.Add(PreWorkoutOffsetMin),
			Type:     models.MealPreWorkout,
			Priority: 4,
		})
		workoutEnd := user.WorkoutTime.Add(user.WorkoutDurationMin)
		anchors = append(anchors, models.AnchorPoint{
			Time:     workoutEnd.Add(PostWorkoutOffsetMin),
			Type:     models.MealPostWorkout,
			Priority: 5,
		})
	}

	return anchors
}

// EatingWindow returns the first and last admissible meal times.
func EatingWindow(user models.UserInputs) (models.Clock, models.Clock) {
	return user.WakeTime.Add(WindowStartOffsetMin), user.SleepTime.Add(WindowEndOffsetMin)
}

type candidateMeal struct {
	time     models.Clock
	mealType models.MealType
	priority int
}

// DistributeMeals merges the anchors with filler meals until the requested
// count is reached, bisecting the largest gap that can host a meal without
// breaking the minimum-gap rule on either side. When anchors exceed the
// requested count the lowest-priority ones are trimmed. If at some point no
// gap is large enough, distribution stops early and returns fewer meals
// than requested; CheckSchedule reports the shortfall as a warning.
func DistributeMeals(user models.UserInputs, anchors []models.AnchorPoint) []models.PlacedMeal {
	meals := make([]candidateMeal, 0, user.NumMeals)
	for _, a := range anchors {
		meals = append(meals, candidateMeal{time: a.Time, mealType: a.Type, priority: a.Priority})
	}
	sortByTime(meals)

	needed := user.NumMeals - len(meals)
	if needed <= 0 {
		if needed < 0 {
			// Keep the highest-priority anchors; stable sort preserves
			// chronological order among equal priorities.
			sort.SliceStable(meals, func(i, j int) bool {
				return meals[i].priority > meals[j].priority
			})
			meals = meals[:user.NumMeals]
			sortByTime(meals)
		}
		return placed(meals)
	}

	windowStart, windowEnd := EatingWindow(user)

	for n := 0; n < needed; n++ {
		largestGap := 0
		insertIdx := 0
		var insertTime *models.Clock

		// Gap between the window start and the first meal.
		firstTime := windowEnd
		if len(meals) > 0 {
			firstTime = meals[0].time
		}
		if gap := windowStart.MinutesUntil(firstTime); gap > largestGap && gap >= MinMealGapMin*2 {
			largestGap = gap
			insertIdx = 0
			t := windowStart.Add(gap / 2)
			insertTime = &t
		}

		// Gaps between consecutive meals.
		for i := 0; i < len(meals)-1; i++ {
			gap := meals[i].time.MinutesUntil(meals[i+1].time)
			if gap > largestGap && gap >= MinMealGapMin*2 {
				largestGap = gap
				insertIdx = i + 1
				t := meals[i].time.Add(gap / 2)
				insertTime = &t
			}
		}

		// Gap between the last meal and the window end.
		if len(meals) > 0 {
			last := meals[len(meals)-1].time
			if gap := last.MinutesUntil(windowEnd); gap > largestGap && gap >= MinMealGapMin*2 {
				largestGap = gap
				insertIdx = len(meals)
				t := last.Add(gap / 2)
				insertTime = &t
			}
		}

		if insertTime == nil {
			// No gap can host another meal without violating the minimum
			// spacing; stop rather than force an invalid placement.
			break
		}

		mealType := classifyFillerMeal(*insertTime, user, meals)
		meals = append(meals, candidateMeal{})
		copy(meals[insertIdx+1:], meals[insertIdx:])
		meals[insertIdx] = candidateMeal{time: *insertTime, mealType: mealType, priority: 1}
	}

	sortByTime(meals)
	return placed(meals)
}

// classifyFillerMeal names an inserted meal by how far into the day it
// falls, without duplicating a type that already exists.
func classifyFillerMeal(t models.Clock, user models.UserInputs, existing []candidateMeal) models.MealType {
	hoursSinceWake := float64(user.WakeTime.MinutesUntil(t)) / 60

	have := make(map[models.MealType]bool, len(existing))
	for _, m := range existing {
		have[m.mealType] = true
	}

	switch {
	case hoursSinceWake < 4 && !have[models.MealBreakfast]:
		return models.MealBreakfast
	case hoursSinceWake < 8 && !have[models.MealLunch]:
		return models.MealLunch
	case hoursSinceWake > 10 && !have[models.MealDinner]:
		return models.MealDinner
	default:
		return models.MealSnack
	}
}

func sortByTime(meals []candidateMeal) {
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].time.Minutes() < meals[j].time.Minutes()
	})
}

func placed(meals []candidateMeal) []models.PlacedMeal {
	out := make([]models.PlacedMeal, len(meals))
	for i, m := range meals {
		out[i] = models.PlacedMeal{Time: m.time, Type: m.mealType}
	}
	return out
}
