package services

import (
	"fmt"
	"sort"
	"strings"

	"backend/models"
)

// Food suggestion engine: matches a user's grocery list against a built-in
// nutrition table (with an optional external lookup for unknown items) and
// composes a serving combination per meal that approaches its macro targets.

// NutritionLookup resolves a free-text grocery item to per-100g nutritional
// density. Implemented by the Edamam client; nil disables external lookups.
type NutritionLookup interface {
	LookupGrocery(item string) (*models.FoodItem, error)
}

func food(name string, protein, carbs, fat, calories, serving float64, cat models.FoodCategory) models.FoodItem {
	return models.FoodItem{
		Name:            name,
		ProteinPer100g:  protein,
		CarbsPer100g:    carbs,
		FatPer100g:      fat,
		CaloriesPer100g: calories,
		TypicalServingG: serving,
		Category:        cat,
	}
}

// foodTable is the built-in per-100g nutrition table keyed by grocery name.
var foodTable = map[string]models.FoodItem{
	// Proteins
	"chicken breast": food("chicken breast", 31, 0, 3.6, 165, 150, models.CategoryProtein),
	"chicken":        food("chicken", 27, 0, 14, 239, 150, models.CategoryProtein),
	"turkey":         food("turkey", 29, 0, 7, 189, 150, models.CategoryProtein),
	"beef":           food("beef", 26, 0, 15, 250, 150, models.CategoryProtein),
	"ground beef":    food("ground beef", 26, 0, 20, 290, 150, models.CategoryProtein),
	"steak":          food("steak", 27, 0, 15, 250, 200, models.CategoryProtein),
	"salmon":         food("salmon", 20, 0, 13, 208, 150, models.CategoryProtein),
	"tuna":           food("tuna", 30, 0, 1, 130, 150, models.CategoryProtein),
	"shrimp":         food("shrimp", 24, 0, 0.3, 99, 150, models.CategoryProtein),
	"fish":           food("fish", 22, 0, 5, 140, 150, models.CategoryProtein),
	"eggs":           food("eggs", 13, 1, 11, 155, 100, models.CategoryProtein),
	"egg whites":     food("egg whites", 11, 0.7, 0, 52, 150, models.CategoryProtein),
	"tofu":           food("tofu", 8, 2, 4, 76, 150, models.CategoryProtein),
	"tempeh":         food("tempeh", 19, 9, 11, 193, 100, models.CategoryProtein),
	"pork":           food("pork", 27, 0, 14, 242, 150, models.CategoryProtein),

	// Dairy
	"greek yogurt":   food("greek yogurt", 10, 4, 0.7, 59, 200, models.CategoryDairy),
	"cottage cheese": food("cottage cheese", 11, 3, 4, 98, 200, models.CategoryDairy),
	"milk":           food("milk", 3.4, 5, 3.2, 60, 250, models.CategoryDairy),
	"cheese":         food("cheese", 25, 1, 33, 402, 30, models.CategoryDairy),
	"whey protein":   food("whey protein", 80, 8, 3, 380, 30, models.CategoryDairy),
	"protein powder": food("protein powder", 80, 8, 3, 380, 30, models.CategoryDairy),

	// Carbs
	"rice":         food("rice", 2.7, 28, 0.3, 130, 150, models.CategoryCarb),
	"white rice":   food("white rice", 2.7, 28, 0.3, 130, 150, models.CategoryCarb),
	"brown rice":   food("brown rice", 2.6, 23, 0.9, 111, 150, models.CategoryCarb),
	"pasta":        food("pasta", 5, 25, 1, 131, 150, models.CategoryCarb),
	"bread":        food("bread", 9, 49, 3, 265, 60, models.CategoryCarb),
	"oatmeal":      food("oatmeal", 13, 68, 7, 389, 50, models.CategoryCarb),
	"oats":         food("oats", 13, 68, 7, 389, 50, models.CategoryCarb),
	"potato":       food("potato", 2, 17, 0.1, 77, 200, models.CategoryCarb),
	"potatoes":     food("potatoes", 2, 17, 0.1, 77, 200, models.CategoryCarb),
	"sweet potato": food("sweet potato", 1.6, 20, 0.1, 86, 200, models.CategoryCarb),
	"quinoa":       food("quinoa", 4.4, 21, 1.9, 120, 150, models.CategoryCarb),
	"tortilla":     food("tortilla", 8, 50, 8, 310, 50, models.CategoryCarb),
	"bagel":        food("bagel", 10, 53, 1, 257, 100, models.CategoryCarb),
	"beans":        food("beans", 9, 23, 0.5, 127, 150, models.CategoryCarb),
	"black beans":  food("black beans", 9, 24, 0.5, 132, 150, models.CategoryCarb),
	"lentils":      food("lentils", 9, 20, 0.4, 116, 150, models.CategoryCarb),
	"chickpeas":    food("chickpeas", 9, 27, 3, 164, 150, models.CategoryCarb),
	"banana":       food("banana", 1.1, 23, 0.3, 89, 120, models.CategoryCarb),
	"apple":        food("apple", 0.3, 14, 0.2, 52, 180, models.CategoryCarb),
	"berries":      food("berries", 0.7, 14, 0.3, 57, 150, models.CategoryCarb),
	"blueberries":  food("blueberries", 0.7, 14, 0.3, 57, 150, models.CategoryCarb),
	"strawberries": food("strawberries", 0.7, 8, 0.3, 32, 150, models.CategoryCarb),
	"orange":       food("orange", 0.9, 12, 0.1, 47, 150, models.CategoryCarb),

	// Fats
	"avocado":       food("avocado", 2, 9, 15, 160, 100, models.CategoryFat),
	"olive oil":     food("olive oil", 0, 0, 100, 884, 15, models.CategoryFat),
	"butter":        food("butter", 0.9, 0.1, 81, 717, 14, models.CategoryFat),
	"almonds":       food("almonds", 21, 22, 49, 579, 30, models.CategoryFat),
	"peanuts":       food("peanuts", 26, 16, 49, 567, 30, models.CategoryFat),
	"peanut butter": food("peanut butter", 25, 20, 50, 588, 32, models.CategoryFat),
	"almond butter": food("almond butter", 21, 19, 56, 614, 32, models.CategoryFat),
	"nuts":          food("nuts", 20, 20, 50, 580, 30, models.CategoryFat),
	"walnuts":       food("walnuts", 15, 14, 65, 654, 30, models.CategoryFat),
	"cashews":       food("cashews", 18, 30, 44, 553, 30, models.CategoryFat),
	"chia seeds":    food("chia seeds", 17, 42, 31, 486, 30, models.CategoryFat),

	// Vegetables
	"broccoli":    food("broccoli", 2.8, 7, 0.4, 34, 150, models.CategoryVegetable),
	"spinach":     food("spinach", 2.9, 3.6, 0.4, 23, 100, models.CategoryVegetable),
	"kale":        food("kale", 4.3, 9, 0.9, 49, 100, models.CategoryVegetable),
	"lettuce":     food("lettuce", 1.4, 2.9, 0.2, 15, 100, models.CategoryVegetable),
	"tomato":      food("tomato", 0.9, 3.9, 0.2, 18, 150, models.CategoryVegetable),
	"cucumber":    food("cucumber", 0.7, 3.6, 0.1, 15, 150, models.CategoryVegetable),
	"bell pepper": food("bell pepper", 1, 6, 0.3, 31, 150, models.CategoryVegetable),
	"onion":       food("onion", 1.1, 9, 0.1, 40, 100, models.CategoryVegetable),
	"carrots":     food("carrots", 0.9, 10, 0.2, 41, 100, models.CategoryVegetable),
	"mushrooms":   food("mushrooms", 3.1, 3.3, 0.3, 22, 100, models.CategoryVegetable),
	"zucchini":    food("zucchini", 1.2, 3.1, 0.3, 17, 150, models.CategoryVegetable),
	"asparagus":   food("asparagus", 2.2, 3.9, 0.1, 20, 150, models.CategoryVegetable),
	"green beans": food("green beans", 1.8, 7, 0.2, 31, 150, models.CategoryVegetable),
	"cauliflower": food("cauliflower", 1.9, 5, 0.3, 25, 150, models.CategoryVegetable),
}

// foodTableKeys orders substring matching so the same grocery string always
// resolves to the same entry.
var foodTableKeys = func() []string {
	keys := make([]string, 0, len(foodTable))
	for key := range foodTable {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}()

// SuggestionService composes meal suggestions from a grocery list.
type SuggestionService struct {
	lookup NutritionLookup
}

func NewSuggestionService(lookup NutritionLookup) *SuggestionService {
	return &SuggestionService{lookup: lookup}
}

// matchGrocery resolves a grocery item against the built-in table, falling
// back to the external lookup for unknown items. Lookup failures degrade to
// "no match"; suggestions are best-effort.
func (s *SuggestionService) matchGrocery(item string) *models.FoodItem {
	q := strings.ToLower(strings.TrimSpace(item))
	if q == "" {
		return nil
	}

	if f, ok := foodTable[q]; ok {
		return &f
	}
	for _, key := range foodTableKeys {
		if strings.Contains(q, key) || strings.Contains(key, q) {
			f := foodTable[key]
			return &f
		}
	}

	if s.lookup != nil {
		if f, err := s.lookup.LookupGrocery(q); err == nil && f != nil {
			return f
		}
	}
	return nil
}

// availableFoods categorizes the matched grocery items.
func (s *SuggestionService) availableFoods(groceries []string) map[models.FoodCategory][]models.FoodItem {
	categorized := make(map[models.FoodCategory][]models.FoodItem)
	for _, item := range groceries {
		if f := s.matchGrocery(item); f != nil {
			categorized[f.Category] = append(categorized[f.Category], *f)
		}
	}
	return categorized
}

// suggestMeal builds one suggestion string sized against the meal's macro
// targets: a protein source covering ~65% of the protein budget, a carb
// source for ~60% of carbs, a vegetable, and a fat source for ~40% of fat.
func suggestMeal(proteinG, carbsG, fatG int, available map[models.FoodCategory][]models.FoodItem, skipProteins map[string]bool) (string, string) {
	var parts []string
	proteinUsed := ""

	proteins := append([]models.FoodItem{}, available[models.CategoryProtein]...)
	proteins = append(proteins, available[models.CategoryDairy]...)
	if skipProteins != nil {
		fresh := proteins[:0]
		for _, p := range proteins {
			if !skipProteins[p.Name] {
				fresh = append(fresh, p)
			}
		}
		if len(fresh) > 0 {
			proteins = fresh
		}
	}
	if len(proteins) > 0 {
		sort.SliceStable(proteins, func(i, j int) bool {
			return proteins[i].ProteinPer100g > proteins[j].ProteinPer100g
		})
		p := proteins[0]
		if p.ProteinPer100g > 0 {
			servingG := float64(proteinG) * 0.65 / p.ProteinPer100g * 100
			if maxServing := p.TypicalServingG * 1.5; servingG > maxServing {
				servingG = maxServing
			}
			if servingG >= 50 {
				parts = append(parts, fmt.Sprintf("%dg %s", int(servingG), p.Name))
				proteinUsed = p.Name
			}
		}
	}

	if carbs := available[models.CategoryCarb]; len(carbs) > 0 && carbsG > 20 {
		c := carbs[0]
		if c.CarbsPer100g > 0 {
			servingG := float64(carbsG) * 0.6 / c.CarbsPer100g * 100
			if maxServing := c.TypicalServingG * 1.5; servingG > maxServing {
				servingG = maxServing
			}
			if servingG >= 30 {
				parts = append(parts, fmt.Sprintf("%dg %s", int(servingG), c.Name))
			}
		}
	}

	if vegs := available[models.CategoryVegetable]; len(vegs) > 0 {
		v := vegs[0]
		parts = append(parts, fmt.Sprintf("%dg %s", int(v.TypicalServingG), v.Name))
	}

	if fats := available[models.CategoryFat]; len(fats) > 0 && fatG > 15 {
		f := fats[0]
		if f.FatPer100g > 0 {
			servingG := float64(fatG) * 0.4 / f.FatPer100g * 100
			if servingG > f.TypicalServingG {
				servingG = f.TypicalServingG
			}
			if servingG >= 5 {
				parts = append(parts, fmt.Sprintf("%dg %s", int(servingG), f.Name))
			}
		}
	}

	return strings.Join(parts, " + "), proteinUsed
}

// SuggestMeals returns one suggestion string per scheduled meal, varying the
// protein source across meals when the grocery list allows it. An empty or
// unmatched grocery list yields empty suggestions.
func (s *SuggestionService) SuggestMeals(meals []models.ScheduledMeal, groceries []string) []string {
	suggestions := make([]string, len(meals))
	if len(groceries) == 0 {
		return suggestions
	}

	available := s.availableFoods(groceries)
	total := 0
	for _, foods := range available {
		total += len(foods)
	}
	if total < 2 {
		return suggestions
	}

	usedProteins := make(map[string]bool)
	for i, meal := range meals {
		text, proteinUsed := suggestMeal(meal.ProteinG, meal.CarbsG, meal.FatG, available, usedProteins)
		suggestions[i] = text
		if proteinUsed != "" {
			usedProteins[proteinUsed] = true
		}
	}
	return suggestions
}
