package models

import "strings"

// UserInputs are the validated parameters a schedule is generated from.
// Wake and sleep are same-day wall-clock values; a sleep time numerically
// before the wake time means sleep falls past midnight.
type UserInputs struct {
	WakeTime           Clock
	SleepTime          Clock
	WorkoutTime        *Clock
	WorkoutType        WorkoutType
	WorkoutDurationMin int
	DailyCalories      int
	DailyProteinG      int
	DailyCarbsG        int
	DailyFatG          int
	NumMeals           int
	Goal               Goal
}

// DeriveMacros fills in carb/fat targets that the user left blank, splitting
// the calories remaining after protein by the goal's carb ratio.
func (u *UserInputs) DeriveMacros() {
	if u.DailyCarbsG > 0 && u.DailyFatG > 0 {
		return
	}
	remaining := u.DailyCalories - u.DailyProteinG*4
	if remaining < 0 {
		remaining = 0
	}
	ratio := u.Goal.CarbRatio()
	if u.DailyCarbsG <= 0 {
		u.DailyCarbsG = int(float64(remaining) * ratio / 4)
	}
	if u.DailyFatG <= 0 {
		u.DailyFatG = int(float64(remaining) * (1 - ratio) / 9)
	}
}

// WorkoutEnd returns the workout end time, or nil on rest days.
func (u *UserInputs) WorkoutEnd() *Clock {
	if u.WorkoutTime == nil {
		return nil
	}
	end := u.WorkoutTime.Add(u.WorkoutDurationMin)
	return &end
}

// ValidationError reports every problem with a schedule request as one
// failure; no partial schedule accompanies it.
type ValidationError struct {
	Issues []string `json:"issues"`
}

func (e *ValidationError) Error() string {
	return "invalid schedule request: " + strings.Join(e.Issues, "; ")
}
