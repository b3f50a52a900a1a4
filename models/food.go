package models

// FoodCategory buckets foods for meal composition.
type FoodCategory string

const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarb      FoodCategory = "carb"
	CategoryFat       FoodCategory = "fat"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryDairy     FoodCategory = "dairy"
)

// FoodItem holds nutritional density per 100g plus a typical serving size,
// used to size suggestions against a meal's macro targets.
type FoodItem struct {
	Name            string       `json:"name"`
	ProteinPer100g  float64      `json:"protein_per_100g"`
	CarbsPer100g    float64      `json:"carbs_per_100g"`
	FatPer100g      float64      `json:"fat_per_100g"`
	CaloriesPer100g float64      `json:"calories_per_100g"`
	TypicalServingG float64      `json:"typical_serving_g"`
	Category        FoodCategory `json:"category"`
}
