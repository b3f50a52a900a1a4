package services

import (
	"testing"

	"backend/models"
)

func TestEdamamServiceConfigured(t *testing.T) {
	if NewEdamamService("", "").Configured() {
		t.Error("empty credentials reported as configured")
	}
	if !NewEdamamService("id", "key").Configured() {
		t.Error("full credentials reported as unconfigured")
	}
}

func TestEdamamLookupUnconfigured(t *testing.T) {
	if _, err := NewEdamamService("", "").LookupGrocery("seitan"); err == nil {
		t.Error("expected error when credentials are missing")
	}
}

func TestClassifyByMacros(t *testing.T) {
	tests := []struct {
		name                          string
		protein, carbs, fat, calories float64
		want                          models.FoodCategory
	}{
		{"low calorie is a vegetable", 2.8, 7, 0.4, 34, models.CategoryVegetable},
		{"protein dominant", 31, 0, 3.6, 165, models.CategoryProtein},
		{"carb dominant", 2.7, 28, 0.3, 130, models.CategoryCarb},
		{"fat dominant", 0, 0, 100, 884, models.CategoryFat},
		{"protein wins ties", 10, 10, 1, 100, models.CategoryProtein},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyByMacros(tt.protein, tt.carbs, tt.fat, tt.calories); got != tt.want {
				t.Errorf("classifyByMacros = %s, want %s", got, tt.want)
			}
		})
	}
}
