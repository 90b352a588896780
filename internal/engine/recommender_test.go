package engine

import (
	"testing"

	"github.com/nutriplan/nutriplan-backend/internal/logger"
)

func recommenderProfile() Profile {
	return Profile{
		Age:           30,
		Gender:        "female",
		HeightCm:      165,
		WeightKg:      60,
		ActivityLevel: "sedentary",
		HealthGoal:    "weight_loss",
	}
}

// Corpus rows that score positively for recommenderProfile and whose lunch
// share lands near the given target.
func matchingRecords(dailyCalories ...float64) []ReferenceRecord {
	records := make([]ReferenceRecord, 0, len(dailyCalories))
	for _, cal := range dailyCalories {
		records = append(records, ReferenceRecord{
			Age:           30,
			Disease:       "Obesity",
			DailyCalories: cal,
		})
	}
	return records
}

func TestRecommendDatasetTier(t *testing.T) {
	corpus := NewCorpus(matchingRecords(2000, 1900, 2100))
	r := NewRecommender(corpus, DefaultCatalog(), logger.NewNop())

	got := r.Recommend(recommenderProfile(), MealLunch, 700)
	if len(got) != 3 {
		t.Fatalf("expected 3 dataset-tier meals, got %d", len(got))
	}
	for _, meal := range got {
		if meal.Type != MealLunch {
			t.Fatalf("meal type = %q, want lunch", meal.Type)
		}
		if len(meal.Foods) != 1 {
			t.Fatalf("expected a single food portion, got %d", len(meal.Foods))
		}
		if meal.Nutrition.Calories < 490 || meal.Nutrition.Calories > 910 {
			t.Fatalf("meal calories %v outside 30%% tolerance of 700", meal.Nutrition.Calories)
		}
	}
}

func TestRecommendToleranceExcludesFarCandidates(t *testing.T) {
	// Lunch shares are 700 and 1400; only the first is within 30% of 700.
	corpus := NewCorpus(matchingRecords(2000, 4000))
	r := NewRecommender(corpus, Catalog{}, logger.NewNop())

	got := r.Recommend(recommenderProfile(), MealLunch, 700)
	if len(got) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(got))
	}
	if got[0].Nutrition.Calories != 700 {
		t.Fatalf("kept the wrong candidate: calories=%v", got[0].Nutrition.Calories)
	}
}

func TestRecommendFallsBackToCatalog(t *testing.T) {
	r := NewRecommender(NewCorpus(nil), DefaultCatalog(), logger.NewNop())

	// Lunch entries within 20% of 450: 450, 500, and 400 kcal.
	got := r.Recommend(recommenderProfile(), MealLunch, 450)
	if len(got) != 3 {
		t.Fatalf("expected 3 catalog meals, got %d", len(got))
	}
	want := map[string]bool{
		"Grilled chicken salad":       true,
		"Quinoa bowl with vegetables": true,
		"Turkey wrap":                 true,
	}
	for _, meal := range got {
		if !want[meal.Name] {
			t.Fatalf("unexpected catalog meal %q", meal.Name)
		}
		if meal.Nutrition.Protein == 0 {
			t.Fatalf("catalog meal %q lost its measured macros", meal.Name)
		}
	}
}

func TestRecommendClosestMatchNeverEmpty(t *testing.T) {
	r := NewRecommender(NewCorpus(nil), DefaultCatalog(), logger.NewNop())

	// No snack is anywhere near 5000 kcal; the closest 3 are returned anyway.
	got := r.Recommend(recommenderProfile(), MealSnack, 5000)
	if len(got) != closestMatchCount {
		t.Fatalf("expected %d closest-match meals, got %d", closestMatchCount, len(got))
	}
	wantOrder := []string{"Mixed nuts", "Hummus with vegetables", "Apple with almond butter"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("closest-match order: got[%d]=%q, want %q", i, got[i].Name, name)
		}
	}
}

func TestRecommendCatalogTierHonorsAllergies(t *testing.T) {
	r := NewRecommender(NewCorpus(nil), DefaultCatalog(), logger.NewNop())

	p := recommenderProfile()
	p.Allergies = []string{"yogurt"}
	got := r.Recommend(p, MealSnack, 150)
	if len(got) != 1 || got[0].Name != "Protein shake" {
		t.Fatalf("expected only Protein shake, got %+v", mealNames(got))
	}
}

func TestRecommendDegradesToUnfilteredCatalog(t *testing.T) {
	catalog := Catalog{
		MealSnack: {
			{Name: "Peanut bar", Calories: 200, Protein: 6, Carbs: 20, Fat: 10},
			{Name: "Peanut smoothie", Calories: 180, Protein: 8, Carbs: 25, Fat: 5},
		},
	}
	r := NewRecommender(NewCorpus(nil), catalog, logger.NewNop())

	p := recommenderProfile()
	p.Allergies = []string{"peanut"}
	got := r.Recommend(p, MealSnack, 190)
	if len(got) != 2 {
		t.Fatalf("expected unfiltered fallback with 2 meals, got %d", len(got))
	}
}

func TestRecommendCapsAtFive(t *testing.T) {
	corpus := NewCorpus(matchingRecords(2000, 2000, 1900, 1900, 2100, 2100, 1950))
	r := NewRecommender(corpus, DefaultCatalog(), logger.NewNop())

	got := r.Recommend(recommenderProfile(), MealLunch, 700)
	if len(got) != maxRecommendations {
		t.Fatalf("expected cap of %d, got %d", maxRecommendations, len(got))
	}
}

func TestRecommendEmptyOnlyWhenCatalogEmpty(t *testing.T) {
	r := NewRecommender(NewCorpus(nil), Catalog{}, logger.NewNop())
	if got := r.Recommend(recommenderProfile(), MealDinner, 500); len(got) != 0 {
		t.Fatalf("expected no meals with empty corpus and catalog, got %d", len(got))
	}
}

func mealNames(meals []Meal) []string {
	names := make([]string, 0, len(meals))
	for _, m := range meals {
		names = append(names, m.Name)
	}
	return names
}
