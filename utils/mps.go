package utils

import "backend/models"

// Muscle protein synthesis thresholds and post-workout dosing, after
// Schoenfeld & Aragon (2018) and Trommelen & Van Loon (2016).

const (
	// MinProteinPerMeal is the smallest dose that reliably stimulates MPS.
	MinProteinPerMeal = 25
	// MaxProteinPerMeal marks diminishing returns for a single dose.
	MaxProteinPerMeal = 40
	// PostWorkoutProteinCap bounds the post-workout bolus.
	PostWorkoutProteinCap = 50

	// LeucineThresholdG is the leucine dose needed to maximally trigger MPS.
	LeucineThresholdG = 2.5
	// LeucineFraction is the leucine share of typical protein sources.
	LeucineFraction = 0.085

	// MPS is maximally elevated 1-4h after resistance exercise.
	MPSPeakStartHours = 1.0
	MPSPeakEndHours   = 4.0
)

// LeucineContent estimates grams of leucine in a protein dose.
func LeucineContent(proteinG int) float64 {
	return float64(proteinG) * LeucineFraction
}

// MeetsLeucineThreshold reports whether a protein dose clears the leucine
// trigger for MPS.
func MeetsLeucineThreshold(proteinG int) bool {
	return LeucineContent(proteinG) >= LeucineThresholdG
}

// PostWorkoutProtein boosts the base allocation for the post-workout meal.
// Lifting earns the largest bump; the result is capped at the post-workout
// bolus ceiling.
func PostWorkoutProtein(baseProtein int, workoutType models.WorkoutType) int {
	factor := 1.30
	switch workoutType {
	case models.WorkoutLifting:
		factor = 1.35
	case models.WorkoutHybrid:
		factor = 1.32
	}

	boosted := int(float64(baseProtein) * factor)
	if boosted > PostWorkoutProteinCap {
		return PostWorkoutProteinCap
	}
	return boosted
}

// IsInMPSPeakWindow reports whether a meal lands in the 1-4h post-workout
// window. Always false on rest days.
func IsInMPSPeakWindow(mealTime models.Clock, workoutEnd *models.Clock) bool {
	if workoutEnd == nil {
		return false
	}
	minsPost := mealTime.Minutes() - workoutEnd.Minutes()
	if minsPost < 0 {
		minsPost += 24 * 60
	}
	hoursPost := float64(minsPost) / 60
	return hoursPost >= MPSPeakStartHours && hoursPost <= MPSPeakEndHours
}

// MPSScore rates a meal time for protein synthesis on a 0-1 scale: bonus for
// the post-workout window and good pre-sleep timing, penalty for eating
// while the awakening cortisol spike is still high.
func MPSScore(mealTime models.Clock, workoutEnd *models.Clock, sleepTime, wakeTime models.Clock) float64 {
	score := 0.5

	if IsInMPSPeakWindow(mealTime, workoutEnd) {
		score += 0.3
	}

	hoursToSleep := float64(mealTime.MinutesUntil(sleepTime)) / 60
	if hoursToSleep >= 2 && hoursToSleep <= 3 {
		score += 0.1
	}

	if HoursSinceWaking(wakeTime, mealTime) < 0.5 {
		score -= 0.1
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
