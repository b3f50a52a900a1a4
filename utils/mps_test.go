package utils

import (
	"math"
	"testing"

	"backend/models"
)

func TestMeetsLeucineThreshold(t *testing.T) {
	tests := []struct {
		proteinG int
		want     bool
	}{
		{20, false},
		{29, false},
		{30, true}, // 30 * 0.085 = 2.55g leucine
		{40, true},
	}
	for _, tt := range tests {
		if got := MeetsLeucineThreshold(tt.proteinG); got != tt.want {
			t.Errorf("MeetsLeucineThreshold(%d) = %v, want %v", tt.proteinG, got, tt.want)
		}
	}
}

func TestPostWorkoutProtein(t *testing.T) {
	tests := []struct {
		name        string
		base        int
		workoutType models.WorkoutType
		want        int
	}{
		{"lifting boost", 30, models.WorkoutLifting, 40},
		{"hybrid boost", 30, models.WorkoutHybrid, 39},
		{"cardio boost", 30, models.WorkoutCardio, 39},
		{"lifting capped", 45, models.WorkoutLifting, 50},
		{"cardio capped", 45, models.WorkoutCardio, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostWorkoutProtein(tt.base, tt.workoutType); got != tt.want {
				t.Errorf("PostWorkoutProtein(%d, %s) = %d, want %d", tt.base, tt.workoutType, got, tt.want)
			}
		})
	}
}

func TestIsInMPSPeakWindow(t *testing.T) {
	end := models.Clock{Hour: 18, Minute: 0}
	tests := []struct {
		name       string
		mealTime   models.Clock
		workoutEnd *models.Clock
		want       bool
	}{
		{"rest day", models.Clock{Hour: 19, Minute: 0}, nil, false},
		{"too soon", models.Clock{Hour: 18, Minute: 30}, &end, false},
		{"window start", models.Clock{Hour: 19, Minute: 0}, &end, true},
		{"mid window", models.Clock{Hour: 20, Minute: 30}, &end, true},
		{"window end", models.Clock{Hour: 22, Minute: 0}, &end, true},
		{"too late", models.Clock{Hour: 22, Minute: 30}, &end, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInMPSPeakWindow(tt.mealTime, tt.workoutEnd); got != tt.want {
				t.Errorf("IsInMPSPeakWindow(%v) = %v, want %v", tt.mealTime, got, tt.want)
			}
		})
	}
}

func TestMPSScore(t *testing.T) {
	end := models.Clock{Hour: 18, Minute: 0}
	sleep := models.Clock{Hour: 23, Minute: 0}
	tests := []struct {
		name       string
		mealTime   models.Clock
		workoutEnd *models.Clock
		want       float64
	}{
		{"neutral rest-day meal", models.Clock{Hour: 13, Minute: 0}, nil, 0.5},
		{"post-workout window", models.Clock{Hour: 19, Minute: 30}, &end, 0.8},
		{"post-workout plus pre-sleep", models.Clock{Hour: 20, Minute: 30}, &end, 0.9},
		{"during cortisol spike", models.Clock{Hour: 7, Minute: 15}, nil, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MPSScore(tt.mealTime, tt.workoutEnd, sleep, wake); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MPSScore(%v) = %v, want %v", tt.mealTime, got, tt.want)
			}
		})
	}
}
