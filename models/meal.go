package models

// AnchorPoint is a fixed, biologically motivated candidate meal time.
// Higher priority anchors survive when the user asks for fewer meals than
// there are anchors.
type AnchorPoint struct {
	Time     Clock
	Type     MealType
	Priority int
}

// PlacedMeal is a finalized slot on the timeline, before macros are assigned.
type PlacedMeal struct {
	Time Clock
	Type MealType
}

// MealMacros is the macro budget of one meal. Calories is always derived
// from the macros (4/4/9), never stored independently.
type MealMacros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	Calories int `json:"calories"`
}

// CaloriesFromMacros applies the 4/4/9 kcal-per-gram conversion.
func CaloriesFromMacros(protein, carbs, fat int) int {
	return protein*4 + carbs*4 + fat*9
}

// ScheduledMeal is the denormalized output row: built once per request and
// never mutated afterward.
type ScheduledMeal struct {
	Number    int      `json:"number"`
	Time      Clock    `json:"-"`
	Time24    string   `json:"time_24h"`
	TimeLabel string   `json:"time"`
	Type      MealType `json:"type"`
	ProteinG  int      `json:"protein_g"`
	CarbsG    int      `json:"carbs_g"`
	FatG      int      `json:"fat_g"`
	Calories  int      `json:"calories"`
	Reasoning string   `json:"reasoning"`
}

// DaySchedule is a full day's plan plus the inputs it was generated from.
type DaySchedule struct {
	Meals []ScheduledMeal `json:"meals"`
	User  UserInputs      `json:"-"`
}

func (s *DaySchedule) TotalCalories() int {
	total := 0
	for _, m := range s.Meals {
		total += m.Calories
	}
	return total
}

func (s *DaySchedule) TotalProtein() int {
	total := 0
	for _, m := range s.Meals {
		total += m.ProteinG
	}
	return total
}

func (s *DaySchedule) TotalCarbs() int {
	total := 0
	for _, m := range s.Meals {
		total += m.CarbsG
	}
	return total
}

func (s *DaySchedule) TotalFat() int {
	total := 0
	for _, m := range s.Meals {
		total += m.FatG
	}
	return total
}
