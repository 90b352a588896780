package engine

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogItem is one entry of the curated fallback food table, with measured
// per-serving macros rather than estimated ones.
type CatalogItem struct {
	Name     string  `yaml:"name"`
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
}

// Catalog maps meal types to curated foods. Used when the corpus yields too
// few usable candidates.
type Catalog map[MealType][]CatalogItem

// DefaultCatalog returns the built-in curated food table.
func DefaultCatalog() Catalog {
	return Catalog{
		MealBreakfast: {
			{Name: "Oatmeal with berries", Calories: 300, Protein: 10, Carbs: 55, Fat: 5},
			{Name: "Greek yogurt with honey", Calories: 250, Protein: 20, Carbs: 30, Fat: 5},
			{Name: "Scrambled eggs with toast", Calories: 350, Protein: 20, Carbs: 30, Fat: 15},
			{Name: "Smoothie bowl", Calories: 400, Protein: 15, Carbs: 60, Fat: 10},
			{Name: "Avocado toast", Calories: 320, Protein: 12, Carbs: 40, Fat: 14},
		},
		MealLunch: {
			{Name: "Grilled chicken salad", Calories: 450, Protein: 40, Carbs: 20, Fat: 20},
			{Name: "Quinoa bowl with vegetables", Calories: 500, Protein: 18, Carbs: 70, Fat: 15},
			{Name: "Salmon with sweet potato", Calories: 550, Protein: 35, Carbs: 50, Fat: 22},
			{Name: "Turkey wrap", Calories: 400, Protein: 30, Carbs: 45, Fat: 12},
			{Name: "Lentil soup", Calories: 350, Protein: 20, Carbs: 55, Fat: 8},
		},
		MealDinner: {
			{Name: "Baked salmon with vegetables", Calories: 600, Protein: 45, Carbs: 30, Fat: 30},
			{Name: "Chicken stir-fry", Calories: 550, Protein: 40, Carbs: 50, Fat: 20},
			{Name: "Vegetable pasta", Calories: 500, Protein: 15, Carbs: 80, Fat: 12},
			{Name: "Beef and vegetable stew", Calories: 650, Protein: 50, Carbs: 40, Fat: 35},
			{Name: "Tofu curry", Calories: 450, Protein: 20, Carbs: 60, Fat: 15},
		},
		MealSnack: {
			{Name: "Apple with almond butter", Calories: 200, Protein: 5, Carbs: 30, Fat: 8},
			{Name: "Greek yogurt", Calories: 150, Protein: 15, Carbs: 10, Fat: 5},
			{Name: "Mixed nuts", Calories: 250, Protein: 8, Carbs: 10, Fat: 20},
			{Name: "Protein shake", Calories: 180, Protein: 25, Carbs: 15, Fat: 3},
			{Name: "Hummus with vegetables", Calories: 220, Protein: 8, Carbs: 25, Fat: 10},
		},
	}
}

// LoadCatalog reads a catalog override from a YAML file keyed by meal type.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var byName map[string][]CatalogItem
	if err := yaml.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	catalog := Catalog{}
	for name, items := range byName {
		mt, ok := ParseMealType(name)
		if !ok {
			return nil, fmt.Errorf("unknown meal type %q in catalog file", name)
		}
		catalog[mt] = items
	}
	return catalog, nil
}

var meatTokens = []string{"chicken", "beef", "turkey", "salmon", "meat"}
var animalTokens = []string{"egg", "yogurt", "milk", "cheese", "butter"}

// FilterCatalog drops foods whose name contains a declared allergen or, for
// vegetarian/vegan preferences, a meat or animal-product token. A food is
// excluded as soon as any allergen substring matches its name.
//
// When filtering removes everything the caller is expected to fall back to
// the unfiltered list rather than return nothing.
func FilterCatalog(items []CatalogItem, preferences, allergies []string) []CatalogItem {
	prefs := map[string]struct{}{}
	for _, p := range preferences {
		prefs[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	_, vegetarian := prefs["vegetarian"]
	_, vegan := prefs["vegan"]

	filtered := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(item.Name)
		if containsAnyToken(name, allergies) {
			continue
		}
		if (vegetarian || vegan) && containsAnyToken(name, meatTokens) {
			continue
		}
		if vegan && containsAnyToken(name, animalTokens) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func containsAnyToken(name string, tokens []string) bool {
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && strings.Contains(name, t) {
			return true
		}
	}
	return false
}
