package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func containsItem(items []CatalogItem, name string) bool {
	for _, it := range items {
		if it.Name == name {
			return true
		}
	}
	return false
}

func TestFilterCatalog(t *testing.T) {
	lunch := DefaultCatalog()[MealLunch]

	cases := []struct {
		name        string
		preferences []string
		allergies   []string
		excluded    []string
		kept        []string
	}{
		{
			name:     "no_constraints_keeps_all",
			kept:     []string{"Grilled chicken salad", "Lentil soup"},
			excluded: nil,
		},
		{
			name:        "vegetarian_drops_meat",
			preferences: []string{"Vegetarian"},
			excluded:    []string{"Grilled chicken salad", "Salmon with sweet potato", "Turkey wrap"},
			kept:        []string{"Quinoa bowl with vegetables", "Lentil soup"},
		},
		{
			name:        "vegan_drops_meat_too",
			preferences: []string{"vegan"},
			excluded:    []string{"Grilled chicken salad", "Turkey wrap"},
			kept:        []string{"Lentil soup"},
		},
		{
			name:      "allergy_excludes_whole_food",
			allergies: []string{"quinoa"},
			excluded:  []string{"Quinoa bowl with vegetables"},
			kept:      []string{"Turkey wrap"},
		},
		{
			name:      "allergy_match_is_case_insensitive",
			allergies: []string{"SALMON"},
			excluded:  []string{"Salmon with sweet potato"},
			kept:      []string{"Lentil soup"},
		},
		{
			name:        "allergy_applies_before_preference",
			preferences: []string{"vegetarian"},
			allergies:   []string{"lentil"},
			excluded:    []string{"Lentil soup", "Grilled chicken salad"},
			kept:        []string{"Quinoa bowl with vegetables"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterCatalog(lunch, tc.preferences, tc.allergies)
			for _, name := range tc.excluded {
				if containsItem(got, name) {
					t.Fatalf("expected %q to be filtered out", name)
				}
			}
			for _, name := range tc.kept {
				if !containsItem(got, name) {
					t.Fatalf("expected %q to survive filtering", name)
				}
			}
		})
	}
}

func TestFilterCatalogVeganDropsAnimalProducts(t *testing.T) {
	breakfast := DefaultCatalog()[MealBreakfast]
	got := FilterCatalog(breakfast, []string{"vegan"}, nil)
	for _, name := range []string{"Greek yogurt with honey", "Scrambled eggs with toast"} {
		if containsItem(got, name) {
			t.Fatalf("expected %q to be filtered out for vegan", name)
		}
	}
	if !containsItem(got, "Oatmeal with berries") {
		t.Fatalf("expected plant food to survive vegan filter")
	}
}

func TestFilterCatalogCanEmpty(t *testing.T) {
	items := []CatalogItem{
		{Name: "Peanut bar", Calories: 200},
		{Name: "Peanut smoothie", Calories: 300},
	}
	if got := FilterCatalog(items, nil, []string{"peanut"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `breakfast:
  - name: Congee
    calories: 280
    protein: 8
    carbs: 55
    fat: 3
snack:
  - name: Edamame
    calories: 120
    protein: 11
    carbs: 9
    fat: 5
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog[MealBreakfast]) != 1 || catalog[MealBreakfast][0].Name != "Congee" {
		t.Fatalf("unexpected breakfast entries: %+v", catalog[MealBreakfast])
	}
	if len(catalog[MealSnack]) != 1 || catalog[MealSnack][0].Calories != 120 {
		t.Fatalf("unexpected snack entries: %+v", catalog[MealSnack])
	}
}

func TestLoadCatalogRejectsUnknownMealType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("brunch:\n  - name: Waffle\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected error for unknown meal type")
	}
}
