package engine

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/nutriplan/nutriplan-backend/internal/logger"
)

// FoodPortion is a single food component of a generated meal.
type FoodPortion struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Nutrition Estimate  `json:"nutrition"`
}

// Meal is one generated meal candidate.
type Meal struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        MealType      `json:"meal_type"`
	Foods       []FoodPortion `json:"foods"`
	Nutrition   Estimate      `json:"nutrition"`
}

// Tolerances and result bounds for a single recommendation query.
const (
	datasetTolerance   = 0.30 // fraction of target calories, corpus tier
	fallbackTolerance  = 0.20 // fraction of target calories, catalog tier
	minDatasetResults  = 3    // fewer than this triggers the catalog tier
	closestMatchCount  = 3    // terminal closest-match picks
	maxRecommendations = 5
)

// Recommender matches a user profile against the corpus and, when corpus
// matches are scarce, against the curated fallback catalog. Stateless apart
// from the read-only corpus and catalog, so safe for concurrent use.
type Recommender struct {
	corpus  *Corpus
	catalog Catalog
	log     *logger.Logger
}

func NewRecommender(corpus *Corpus, catalog Catalog, log *logger.Logger) *Recommender {
	return &Recommender{corpus: corpus, catalog: catalog, log: log.With("component", "Recommender")}
}

// Recommend returns up to 5 candidate meals for one (profile, meal type,
// target calories) query. Corpus matches within 30% of the target come
// first; if fewer than 3 results exist the catalog tier is queried at 20%
// tolerance, and if that still yields nothing the 3 catalog entries closest
// to the target are used. The result is empty only when the catalog for the
// meal type is empty.
func (r *Recommender) Recommend(profile Profile, mealType MealType, targetCalories float64) []Meal {
	normalized := NormalizeProfile(profile)

	var recommendations []Meal

	tolerance := targetCalories * datasetTolerance
	for _, cand := range r.corpus.FindMatches(normalized, mealType) {
		if math.Abs(cand.Calories-targetCalories) > tolerance {
			continue
		}
		nutrition := EstimateNutrition(cand.Calories, cand.Tags, cand.DietRecommendation)
		recommendations = append(recommendations, buildMeal(
			cand.Name,
			"Personalized "+string(mealType)+" based on your age, BMI, goal, and activity level",
			mealType,
			nutrition,
		))
	}

	if len(recommendations) < minDatasetResults {
		available := FilterCatalog(r.catalog[mealType], profile.FoodPreferences, profile.Allergies)
		if len(available) == 0 {
			available = r.catalog[mealType]
		}

		tolerance = targetCalories * fallbackTolerance
		for _, food := range available {
			if math.Abs(food.Calories-targetCalories) > tolerance {
				continue
			}
			recommendations = append(recommendations, catalogMeal(food, mealType))
		}

		// Closest-match terminal state: never return empty while the
		// catalog has entries.
		if len(recommendations) == 0 {
			closest := make([]CatalogItem, len(available))
			copy(closest, available)
			sort.SliceStable(closest, func(i, j int) bool {
				return math.Abs(closest[i].Calories-targetCalories) < math.Abs(closest[j].Calories-targetCalories)
			})
			if len(closest) > closestMatchCount {
				closest = closest[:closestMatchCount]
			}
			for _, food := range closest {
				recommendations = append(recommendations, catalogMeal(food, mealType))
			}
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func buildMeal(name, description string, mealType MealType, nutrition Estimate) Meal {
	return Meal{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Type:        mealType,
		Foods: []FoodPortion{{
			ID:        uuid.New(),
			Name:      name,
			Quantity:  100.0,
			Unit:      "g",
			Nutrition: nutrition,
		}},
		Nutrition: nutrition,
	}
}

func catalogMeal(food CatalogItem, mealType MealType) Meal {
	nutrition := Estimate{
		Calories:      food.Calories,
		Protein:       food.Protein,
		Carbohydrates: food.Carbs,
		Fat:           food.Fat,
		Fiber:         fiberDefaultGrams,
	}
	return buildMeal(food.Name, "Recommended "+string(mealType)+" based on your profile", mealType, nutrition)
}
