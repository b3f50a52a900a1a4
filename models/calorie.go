package models

import "fmt"

// Gender as used by the BMR formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// ActivityLevel scales BMR to total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "lightly_active"
	ActivityModerate   ActivityLevel = "moderately_active"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityExtreme    ActivityLevel = "extremely_active"
)

func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch ActivityLevel(s) {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive, ActivityExtreme:
		return ActivityLevel(s), nil
	}
	return "", fmt.Errorf("unknown activity level %q", s)
}

// PlanGoal is the calorie-planning goal (distinct from the scheduling Goal):
// how aggressively to cut or bulk.
type PlanGoal string

const (
	PlanLoseFast PlanGoal = "lose_fast"
	PlanLose     PlanGoal = "lose"
	PlanLoseSlow PlanGoal = "lose_slow"
	PlanMaintain PlanGoal = "maintain"
	PlanGainSlow PlanGoal = "gain_slow"
	PlanGain     PlanGoal = "gain"
	PlanGainFast PlanGoal = "gain_fast"
)

// PlanGoals lists every goal in cut-to-bulk order.
var PlanGoals = []PlanGoal{
	PlanLoseFast, PlanLose, PlanLoseSlow, PlanMaintain,
	PlanGainSlow, PlanGain, PlanGainFast,
}

func ParsePlanGoal(s string) (PlanGoal, error) {
	for _, g := range PlanGoals {
		if PlanGoal(s) == g {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown plan goal %q", s)
}

// UserStats are the physical stats a calorie recommendation is computed from.
type UserStats struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
	BodyFatPct    float64 // 0 when unknown
}

// CalorieRecommendation is the full output of the calorie calculator for one
// plan goal.
type CalorieRecommendation struct {
	BMR            int     `json:"bmr"`
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
	ProteinG       int     `json:"protein_g"`
	CarbsG         int     `json:"carbs_g"`
	FatG           int     `json:"fat_g"`
	ProteinPct     int     `json:"protein_pct"`
	CarbsPct       int     `json:"carbs_pct"`
	FatPct         int     `json:"fat_pct"`
	WeeklyChangeKg float64 `json:"weekly_change_kg"`
	BMI            float64 `json:"bmi"`
	BMICategory    string  `json:"bmi_category"`
	Explanation    string  `json:"explanation"`
}
