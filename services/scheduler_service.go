package services

import (
	"fmt"

	"backend/models"
)

// ScheduleRequest is the wire form of a schedule request, before validation.
type ScheduleRequest struct {
	WakeTime           string `json:"wake_time"`
	SleepTime          string `json:"sleep_time"`
	WorkoutTime        string `json:"workout_time"`
	WorkoutType        string `json:"workout_type"`
	WorkoutDurationMin int    `json:"workout_duration_min"`
	DailyCalories      int    `json:"daily_calories"`
	DailyProteinG      int    `json:"daily_protein_g"`
	DailyCarbsG        int    `json:"daily_carbs_g"`
	DailyFatG          int    `json:"daily_fat_g"`
	NumMeals           int    `json:"num_meals"`
	Goal               string `json:"goal"`
}

// ParseUserInputs validates a request and produces engine inputs. Every
// problem is collected and reported as one ValidationError; nothing is
// scheduled on a bad request.
func ParseUserInputs(req ScheduleRequest) (models.UserInputs, error) {
	var issues []string
	var user models.UserInputs

	wake, err := models.ParseClock(req.WakeTime)
	if err != nil {
		issues = append(issues, "wake_time: "+err.Error())
	}
	user.WakeTime = wake

	sleep, err := models.ParseClock(req.SleepTime)
	if err != nil {
		issues = append(issues, "sleep_time: "+err.Error())
	}
	user.SleepTime = sleep

	if req.WorkoutTime != "" {
		wt, err := models.ParseClock(req.WorkoutTime)
		if err != nil {
			issues = append(issues, "workout_time: "+err.Error())
		} else {
			user.WorkoutTime = &wt
		}
	}

	user.WorkoutType, err = models.ParseWorkoutType(req.WorkoutType)
	if err != nil {
		issues = append(issues, "workout_type: "+err.Error())
	}

	user.WorkoutDurationMin = req.WorkoutDurationMin
	if user.WorkoutDurationMin <= 0 {
		user.WorkoutDurationMin = 60
	}

	if req.DailyCalories <= 0 {
		issues = append(issues, "daily_calories: must be a positive integer")
	}
	user.DailyCalories = req.DailyCalories

	if req.DailyProteinG <= 0 {
		issues = append(issues, "daily_protein_g: must be a positive integer")
	}
	user.DailyProteinG = req.DailyProteinG
	user.DailyCarbsG = req.DailyCarbsG
	user.DailyFatG = req.DailyFatG

	if req.NumMeals < 3 || req.NumMeals > 6 {
		issues = append(issues, fmt.Sprintf("num_meals: %d is outside the allowed range 3-6", req.NumMeals))
	}
	user.NumMeals = req.NumMeals

	goal := req.Goal
	if goal == "" {
		goal = string(models.GoalMaintenance)
	}
	user.Goal, err = models.ParseGoal(goal)
	if err != nil {
		issues = append(issues, "goal: "+err.Error())
	}

	if len(issues) > 0 {
		return models.UserInputs{}, &models.ValidationError{Issues: issues}
	}

	user.DeriveMacros()
	return user, nil
}

// GenerateSchedule runs the full engine: anchors, distribution, constraint
// checks, macro allocation and reasoning, zipped into a DaySchedule. The
// warnings are advisory; a schedule is always returned for valid inputs.
func GenerateSchedule(user models.UserInputs) (*models.DaySchedule, []Warning) {
	anchors := CalculateAnchorPoints(user)
	placed := DistributeMeals(user, anchors)
	warnings := CheckSchedule(placed, user)
	macros := AllocateMacros(placed, user)

	meals := make([]models.ScheduledMeal, 0, len(placed))
	for i, slot := range placed {
		meals = append(meals, models.ScheduledMeal{
			Number:    i + 1,
			Time:      slot.Time,
			Time24:    slot.Time.String(),
			TimeLabel: slot.Time.Display(),
			Type:      slot.Type,
			ProteinG:  macros[i].ProteinG,
			CarbsG:    macros[i].CarbsG,
			FatG:      macros[i].FatG,
			Calories:  macros[i].Calories,
			Reasoning: MealReasoning(slot.Time, slot.Type, user),
		})
	}

	return &models.DaySchedule{Meals: meals, User: user}, warnings
}

// GenerateScheduleFromRequest parses, validates and schedules in one call.
func GenerateScheduleFromRequest(req ScheduleRequest) (*models.DaySchedule, []Warning, error) {
	user, err := ParseUserInputs(req)
	if err != nil {
		return nil, nil, err
	}
	schedule, warnings := GenerateSchedule(user)
	return schedule, warnings, nil
}
