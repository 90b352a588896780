package engine

import (
	"math"
	"strings"
)

// DiseaseType is the canonical disease category used by the corpus.
type DiseaseType string

const (
	DiseaseNone         DiseaseType = "None"
	DiseaseDiabetes     DiseaseType = "Diabetes"
	DiseaseObesity      DiseaseType = "Obesity"
	DiseaseHypertension DiseaseType = "Hypertension"
)

// ActivityTier is the coarse activity bucket used by the corpus.
type ActivityTier string

const (
	ActivitySedentary ActivityTier = "Sedentary"
	ActivityModerate  ActivityTier = "Moderate"
	ActivityActive    ActivityTier = "Active"
)

// Restriction is a dietary restriction label as it appears in the corpus.
type Restriction string

const (
	RestrictionNone      Restriction = "None"
	RestrictionLowSugar  Restriction = "Low_Sugar"
	RestrictionLowSodium Restriction = "Low_Sodium"
)

// MealType is a closed enum; MealTypes fixes the iteration order used by
// plan assembly.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// MealCalorieShare splits a daily calorie budget across meal types.
// The shares sum to 1.0.
var MealCalorieShare = map[MealType]float64{
	MealBreakfast: 0.25,
	MealLunch:     0.35,
	MealDinner:    0.30,
	MealSnack:     0.10,
}

func ParseMealType(s string) (MealType, bool) {
	switch MealType(strings.ToLower(strings.TrimSpace(s))) {
	case MealBreakfast:
		return MealBreakfast, true
	case MealLunch:
		return MealLunch, true
	case MealDinner:
		return MealDinner, true
	case MealSnack:
		return MealSnack, true
	}
	return "", false
}

// Profile is the raw user profile as stored. Zero values mean "not set".
type Profile struct {
	Age             int
	Gender          string
	HeightCm        float64
	WeightKg        float64
	ActivityLevel   string
	HealthGoal      string
	FoodPreferences []string
	Allergies       []string
}

// NormalizedProfile holds the canonical attribute values the matcher scores
// against. BMI of 0 means unknown (no score contribution).
type NormalizedProfile struct {
	Age          int
	BMI          float64
	Disease      DiseaseType
	Activity     ActivityTier
	Restrictions []Restriction
	Allergies    []string
	Cuisine      string
	Gender       string
}

// NormalizeProfile maps a raw profile to canonical categorical values.
// It is total: missing or unrecognized input falls back to defaults.
func NormalizeProfile(p Profile) NormalizedProfile {
	allergies := make([]string, 0, len(p.Allergies))
	for _, a := range p.Allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			allergies = append(allergies, a)
		}
	}
	return NormalizedProfile{
		Age:          p.Age,
		BMI:          BMI(p.HeightCm, p.WeightKg),
		Disease:      ClassifyDisease(p.HealthGoal),
		Activity:     ClassifyActivity(p.ActivityLevel),
		Restrictions: DeriveRestrictions(p.HealthGoal),
		Allergies:    allergies,
		Cuisine:      PreferredCuisine(p.FoodPreferences),
		Gender:       strings.ToLower(strings.TrimSpace(p.Gender)),
	}
}

// BMI returns weight/(height-m)^2 rounded to one decimal, or 0 when either
// input is missing.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// ClassifyDisease maps a free-text health goal onto a disease category by
// substring match.
func ClassifyDisease(goal string) DiseaseType {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "diabetes"):
		return DiseaseDiabetes
	case strings.Contains(g, "obesity"), strings.Contains(g, "weight_loss"), strings.Contains(g, "weight loss"):
		return DiseaseObesity
	case strings.Contains(g, "hypertension"), strings.Contains(g, "blood_pressure"), strings.Contains(g, "blood pressure"):
		return DiseaseHypertension
	}
	return DiseaseNone
}

// ClassifyActivity maps a free-text activity level onto a corpus tier.
// Unset or unrecognized input defaults to Moderate.
func ClassifyActivity(activity string) ActivityTier {
	a := strings.ToLower(activity)
	switch {
	case strings.Contains(a, "sedentary"):
		return ActivitySedentary
	case strings.Contains(a, "lightly_active"), strings.Contains(a, "lightly active"):
		return ActivityModerate
	case strings.Contains(a, "moderately_active"), strings.Contains(a, "moderately active"):
		return ActivityModerate
	case strings.Contains(a, "very_active"), strings.Contains(a, "very active"):
		return ActivityActive
	case strings.Contains(a, "extremely_active"), strings.Contains(a, "extremely active"):
		return ActivityActive
	}
	return ActivityModerate
}

// DeriveRestrictions derives dietary restrictions from the health goal.
// Diabetes-implying text yields Low_Sugar, hypertension-implying text yields
// Low_Sodium; both may apply. No match yields {None}.
func DeriveRestrictions(goal string) []Restriction {
	g := strings.ToLower(goal)
	var out []Restriction
	if strings.Contains(g, "diabetes") {
		out = append(out, RestrictionLowSugar)
	}
	if strings.Contains(g, "hypertension") || strings.Contains(g, "blood_pressure") || strings.Contains(g, "blood pressure") {
		out = append(out, RestrictionLowSodium)
	}
	if len(out) == 0 {
		return []Restriction{RestrictionNone}
	}
	return out
}

var cuisinePriority = []string{"indian", "chinese", "mexican", "italian"}

// PreferredCuisine scans free-text preferences for a known cuisine, in fixed
// priority order. Defaults to Indian.
func PreferredCuisine(preferences []string) string {
	joined := strings.ToLower(strings.Join(preferences, " "))
	for _, c := range cuisinePriority {
		if strings.Contains(joined, c) {
			return strings.ToUpper(c[:1]) + c[1:]
		}
	}
	return "Indian"
}
