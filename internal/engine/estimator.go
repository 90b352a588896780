package engine

import (
	"math"
	"strings"
)

// Estimate is a macro-nutrient breakdown. Grams are derived from calories
// via fixed ratios, so protein*4 + carbs*4 + fat*9 always lands within
// rounding distance of Calories.
type Estimate struct {
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbohydrates float64  `json:"carbohydrates"`
	Fat           float64  `json:"fat"`
	Fiber         float64  `json:"fiber"`
	Sugar         *float64 `json:"sugar,omitempty"`
	Sodium        *float64 `json:"sodium,omitempty"`
}

// macroRatio is a protein/carb/fat calorie split.
type macroRatio struct {
	Protein float64
	Carb    float64
	Fat     float64
}

var defaultRatio = macroRatio{Protein: 0.25, Carb: 0.45, Fat: 0.30}

// dietRatios selects a base ratio from the corpus diet recommendation.
var dietRatios = map[string]macroRatio{
	"Low_Carb":   {Protein: 0.40, Carb: 0.20, Fat: 0.40},
	"Low_Sodium": {Protein: 0.30, Carb: 0.45, Fat: 0.25},
	"Balanced":   {Protein: 0.25, Carb: 0.45, Fat: 0.30},
}

// tagRatios override the diet base when a matching tag is present. Checked
// in this order; the first hit wins.
var tagRatioOrder = []struct {
	tags  []string
	ratio macroRatio
}{
	{tags: []string{"high-protein", "protein"}, ratio: macroRatio{Protein: 0.35, Carb: 0.35, Fat: 0.30}},
	{tags: []string{"low-carb", "low_carb"}, ratio: macroRatio{Protein: 0.40, Carb: 0.20, Fat: 0.40}},
	{tags: []string{"low-fat"}, ratio: macroRatio{Protein: 0.30, Carb: 0.55, Fat: 0.15}},
	{tags: []string{"high-calorie"}, ratio: macroRatio{Protein: 0.25, Carb: 0.50, Fat: 0.25}},
}

// Calorie density constants (kcal per gram).
const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// Fiber heuristic constants in grams per meal; not derived from calories.
const (
	fiberRichGrams    = 8.0
	fiberDefaultGrams = 5.0
)

// EstimateNutrition derives macro grams from a calorie value plus
// categorical hints. Pure and total: unknown inputs fall back to the
// default balanced ratio.
func EstimateNutrition(calories float64, tags []string, dietRecommendation string) Estimate {
	ratio := defaultRatio
	if r, ok := dietRatios[dietRecommendation]; ok {
		ratio = r
	}

	lowered := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		lowered[strings.ToLower(t)] = struct{}{}
	}
	for _, override := range tagRatioOrder {
		if anyTag(lowered, override.tags) {
			ratio = override.ratio
			break
		}
	}

	fiber := fiberDefaultGrams
	if anyTag(lowered, []string{"fiber-rich", "fiber"}) {
		fiber = fiberRichGrams
	}

	return Estimate{
		Calories:      calories,
		Protein:       round1(calories * ratio.Protein / kcalPerGramProtein),
		Carbohydrates: round1(calories * ratio.Carb / kcalPerGramCarb),
		Fat:           round1(calories * ratio.Fat / kcalPerGramFat),
		Fiber:         fiber,
	}
}

func anyTag(set map[string]struct{}, tags []string) bool {
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
