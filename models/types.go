package models

import "fmt"

// MealType classifies a meal slot on the daily timeline.
type MealType string

const (
	MealBreakfast   MealType = "breakfast"
	MealLunch       MealType = "lunch"
	MealDinner      MealType = "dinner"
	MealPreWorkout  MealType = "pre_workout"
	MealPostWorkout MealType = "post_workout"
	MealSnack       MealType = "snack"
)

// Display renders the type for user-facing text, e.g. "Post Workout".
func (t MealType) Display() string {
	switch t {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealPreWorkout:
		return "Pre Workout"
	case MealPostWorkout:
		return "Post Workout"
	case MealSnack:
		return "Snack"
	}
	return string(t)
}

// WorkoutType is the training modality; the zero value means no workout.
type WorkoutType string

const (
	WorkoutNone    WorkoutType = ""
	WorkoutLifting WorkoutType = "lifting"
	WorkoutCardio  WorkoutType = "cardio"
	WorkoutHybrid  WorkoutType = "hybrid"
)

func ParseWorkoutType(s string) (WorkoutType, error) {
	switch WorkoutType(s) {
	case WorkoutNone, WorkoutLifting, WorkoutCardio, WorkoutHybrid:
		return WorkoutType(s), nil
	}
	return WorkoutNone, fmt.Errorf("unknown workout type %q", s)
}

// Goal is the user's training/diet goal for schedule generation.
type Goal string

const (
	GoalMuscleGain  Goal = "muscle_gain"
	GoalFatLoss     Goal = "fat_loss"
	GoalMaintenance Goal = "maintenance"
	GoalPerformance Goal = "performance"
)

func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalMuscleGain, GoalFatLoss, GoalMaintenance, GoalPerformance:
		return Goal(s), nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// CarbRatio is the share of non-protein calories assigned to carbs when the
// user leaves daily carb/fat targets blank.
func (g Goal) CarbRatio() float64 {
	switch g {
	case GoalMuscleGain:
		return 0.6
	case GoalFatLoss:
		return 0.4
	case GoalMaintenance, GoalPerformance:
		return 0.5
	}
	return 0.5
}
