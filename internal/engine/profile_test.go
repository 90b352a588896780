package engine

import (
	"math"
	"testing"
)

func TestClassifyDisease(t *testing.T) {
	cases := []struct {
		name string
		goal string
		want DiseaseType
	}{
		{name: "diabetes", goal: "diabetes_management", want: DiseaseDiabetes},
		{name: "diabetes_mixed_case", goal: "Manage my Diabetes", want: DiseaseDiabetes},
		{name: "weight_loss", goal: "weight_loss", want: DiseaseObesity},
		{name: "weight_loss_spaced", goal: "steady weight loss", want: DiseaseObesity},
		{name: "obesity", goal: "obesity", want: DiseaseObesity},
		{name: "hypertension", goal: "hypertension", want: DiseaseHypertension},
		{name: "blood_pressure", goal: "lower blood_pressure", want: DiseaseHypertension},
		{name: "maintenance", goal: "maintenance", want: DiseaseNone},
		{name: "empty", goal: "", want: DiseaseNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyDisease(tc.goal); got != tc.want {
				t.Fatalf("ClassifyDisease(%q)=%q, want %q", tc.goal, got, tc.want)
			}
		})
	}
}

func TestClassifyActivity(t *testing.T) {
	cases := []struct {
		name     string
		activity string
		want     ActivityTier
	}{
		{name: "sedentary", activity: "sedentary", want: ActivitySedentary},
		{name: "lightly_active", activity: "lightly_active", want: ActivityModerate},
		{name: "lightly_active_spaced", activity: "Lightly Active", want: ActivityModerate},
		{name: "moderately_active", activity: "moderately_active", want: ActivityModerate},
		{name: "very_active", activity: "very_active", want: ActivityActive},
		{name: "extremely_active", activity: "extremely_active", want: ActivityActive},
		{name: "unset", activity: "", want: ActivityModerate},
		{name: "unrecognized", activity: "couch potato", want: ActivityModerate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyActivity(tc.activity); got != tc.want {
				t.Fatalf("ClassifyActivity(%q)=%q, want %q", tc.activity, got, tc.want)
			}
		})
	}
}

func TestDeriveRestrictions(t *testing.T) {
	cases := []struct {
		name string
		goal string
		want []Restriction
	}{
		{name: "diabetes", goal: "diabetes_management", want: []Restriction{RestrictionLowSugar}},
		{name: "hypertension", goal: "hypertension", want: []Restriction{RestrictionLowSodium}},
		{name: "both", goal: "diabetes and hypertension", want: []Restriction{RestrictionLowSugar, RestrictionLowSodium}},
		{name: "neither", goal: "muscle_gain", want: []Restriction{RestrictionNone}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveRestrictions(tc.goal)
			if len(got) != len(tc.want) {
				t.Fatalf("DeriveRestrictions(%q)=%v, want %v", tc.goal, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("DeriveRestrictions(%q)=%v, want %v", tc.goal, got, tc.want)
				}
			}
		})
	}
}

func TestPreferredCuisine(t *testing.T) {
	cases := []struct {
		name  string
		prefs []string
		want  string
	}{
		{name: "indian", prefs: []string{"indian food"}, want: "Indian"},
		{name: "chinese", prefs: []string{"vegetarian", "chinese"}, want: "Chinese"},
		{name: "priority_order", prefs: []string{"italian", "indian"}, want: "Indian"},
		{name: "default", prefs: []string{"vegan"}, want: "Indian"},
		{name: "empty", prefs: nil, want: "Indian"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PreferredCuisine(tc.prefs); got != tc.want {
				t.Fatalf("PreferredCuisine(%v)=%q, want %q", tc.prefs, got, tc.want)
			}
		})
	}
}

func TestBMI(t *testing.T) {
	if got := BMI(175, 80); math.Abs(got-26.1) > 0.001 {
		t.Fatalf("BMI(175, 80)=%v, want 26.1", got)
	}
	if got := BMI(0, 80); got != 0 {
		t.Fatalf("BMI with missing height = %v, want 0", got)
	}
	if got := BMI(175, 0); got != 0 {
		t.Fatalf("BMI with missing weight = %v, want 0", got)
	}
}

func TestMealCalorieShareSumsToOne(t *testing.T) {
	var sum float64
	for _, mt := range MealTypes {
		sum += MealCalorieShare[mt]
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("meal calorie shares sum to %v, want 1.0", sum)
	}
}

func TestNormalizeProfileLowersAllergies(t *testing.T) {
	p := NormalizeProfile(Profile{Allergies: []string{" Peanut ", "SHELLFISH"}})
	if len(p.Allergies) != 2 || p.Allergies[0] != "peanut" || p.Allergies[1] != "shellfish" {
		t.Fatalf("normalized allergies = %v", p.Allergies)
	}
}
