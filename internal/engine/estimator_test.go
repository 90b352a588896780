package engine

import (
	"math"
	"testing"
)

func TestEstimateNutritionRatioSelection(t *testing.T) {
	cases := []struct {
		name    string
		dietRec string
		tags    []string
		ratio   macroRatio
	}{
		{name: "default", dietRec: "", tags: nil, ratio: defaultRatio},
		{name: "balanced", dietRec: "Balanced", tags: nil, ratio: macroRatio{0.25, 0.45, 0.30}},
		{name: "low_carb_diet", dietRec: "Low_Carb", tags: nil, ratio: macroRatio{0.40, 0.20, 0.40}},
		{name: "low_sodium_diet", dietRec: "Low_Sodium", tags: nil, ratio: macroRatio{0.30, 0.45, 0.25}},
		{name: "high_protein_tag", dietRec: "Balanced", tags: []string{"high-protein"}, ratio: macroRatio{0.35, 0.35, 0.30}},
		{name: "protein_tag_alias", dietRec: "", tags: []string{"protein"}, ratio: macroRatio{0.35, 0.35, 0.30}},
		{name: "low_carb_tag_overrides_diet", dietRec: "Low_Sodium", tags: []string{"low-carb"}, ratio: macroRatio{0.40, 0.20, 0.40}},
		{name: "low_fat_tag", dietRec: "", tags: []string{"low-fat"}, ratio: macroRatio{0.30, 0.55, 0.15}},
		{name: "high_calorie_tag", dietRec: "", tags: []string{"high-calorie"}, ratio: macroRatio{0.25, 0.50, 0.25}},
		{name: "tag_case_insensitive", dietRec: "", tags: []string{"High-Protein"}, ratio: macroRatio{0.35, 0.35, 0.30}},
	}
	const calories = 600.0
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateNutrition(calories, tc.tags, tc.dietRec)
			wantProtein := round1(calories * tc.ratio.Protein / 4)
			wantCarbs := round1(calories * tc.ratio.Carb / 4)
			wantFat := round1(calories * tc.ratio.Fat / 9)
			if got.Protein != wantProtein || got.Carbohydrates != wantCarbs || got.Fat != wantFat {
				t.Fatalf("got P/C/F %v/%v/%v, want %v/%v/%v",
					got.Protein, got.Carbohydrates, got.Fat, wantProtein, wantCarbs, wantFat)
			}
		})
	}
}

// The estimator derives grams from ratios of the calorie value, so the
// energy identity 4P + 4C + 9F ~ calories must hold within 1%.
func TestEstimateNutritionEnergyIdentity(t *testing.T) {
	calorieLevels := []float64{150, 300, 456.13, 550, 700, 1824.525}
	dietRecs := []string{"", "Balanced", "Low_Carb", "Low_Sodium", "unknown"}
	tagSets := [][]string{nil, {"high-protein"}, {"low-carb"}, {"low-fat"}, {"high-calorie"}, {"fiber-rich"}}

	for _, calories := range calorieLevels {
		for _, dietRec := range dietRecs {
			for _, tags := range tagSets {
				got := EstimateNutrition(calories, tags, dietRec)
				energy := got.Protein*4 + got.Carbohydrates*4 + got.Fat*9
				if math.Abs(energy-calories)/calories > 0.01 {
					t.Fatalf("energy identity violated: calories=%v dietRec=%q tags=%v -> %v",
						calories, dietRec, tags, energy)
				}
			}
		}
	}
}

func TestEstimateNutritionFiber(t *testing.T) {
	if got := EstimateNutrition(500, []string{"fiber-rich"}, "").Fiber; got != fiberRichGrams {
		t.Fatalf("fiber-rich fiber=%v, want %v", got, fiberRichGrams)
	}
	if got := EstimateNutrition(500, []string{"fiber"}, "").Fiber; got != fiberRichGrams {
		t.Fatalf("fiber tag fiber=%v, want %v", got, fiberRichGrams)
	}
	if got := EstimateNutrition(500, nil, "").Fiber; got != fiberDefaultGrams {
		t.Fatalf("default fiber=%v, want %v", got, fiberDefaultGrams)
	}
}
