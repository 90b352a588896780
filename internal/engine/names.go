package engine

import "strings"

// cuisineDishes maps cuisine x meal type to representative dish names used
// for generated meal titles. Cosmetic text only; the qualifier prefixes
// below carry the dietary meaning.
var cuisineDishes = map[string]map[MealType][]string{
	"Indian": {
		MealBreakfast: {"Poha", "Upma", "Dosa", "Idli", "Paratha", "Poha with vegetables", "Vegetable upma"},
		MealLunch:     {"Dal rice", "Vegetable curry with roti", "Rajma rice", "Chana masala", "Palak paneer", "Mixed vegetable curry"},
		MealDinner:    {"Dal tadka with rice", "Vegetable biryani", "Paneer curry", "Lentil soup", "Vegetable pulao"},
		MealSnack:     {"Fruit", "Nuts", "Yogurt", "Roasted chickpeas", "Vegetable salad"},
	},
	"Chinese": {
		MealBreakfast: {"Steamed buns", "Congee", "Scrambled eggs", "Vegetable soup", "Rice porridge"},
		MealLunch:     {"Stir-fried vegetables", "Tofu curry", "Vegetable noodles", "Steamed rice with vegetables", "Hot and sour soup"},
		MealDinner:    {"Vegetable fried rice", "Steamed vegetables", "Tofu stir-fry", "Mixed vegetable curry", "Clear soup"},
		MealSnack:     {"Fruit", "Steamed dumplings", "Vegetable spring rolls", "Nuts"},
	},
	"Mexican": {
		MealBreakfast: {"Scrambled eggs", "Avocado toast", "Breakfast burrito", "Fruit bowl", "Oatmeal"},
		MealLunch:     {"Bean burrito", "Vegetable fajitas", "Rice and beans", "Guacamole with vegetables", "Vegetable quesadilla"},
		MealDinner:    {"Vegetable tacos", "Bean soup", "Rice bowl", "Vegetable enchiladas", "Grilled vegetables"},
		MealSnack:     {"Fruit", "Nuts", "Vegetable sticks", "Hummus"},
	},
	"Italian": {
		MealBreakfast: {"Oatmeal", "Fruit bowl", "Yogurt", "Whole grain toast", "Scrambled eggs"},
		MealLunch:     {"Pasta with vegetables", "Minestrone soup", "Caprese salad", "Risotto", "Vegetable pizza"},
		MealDinner:    {"Pasta primavera", "Vegetable lasagna", "Grilled vegetables", "Risotto", "Vegetable soup"},
		MealSnack:     {"Fruit", "Nuts", "Olives", "Cheese"},
	},
}

// mealName derives a display name from cuisine, meal type and diet
// recommendation. Unknown cuisines fall back to "<cuisine> <meal type>".
func mealName(mealType MealType, dietRecommendation, cuisine, disease string) string {
	options := cuisineDishes[cuisine][mealType]
	fallback := cuisine + " " + string(mealType)

	switch dietRecommendation {
	case "Low_Carb":
		if mealType == MealBreakfast {
			return "Protein-rich " + firstOr(options, string(mealType))
		}
		if mealType == MealLunch && len(options) > 1 {
			return "Low-carb " + options[1]
		}
		return "Low-carb " + firstOr(options, string(mealType))
	case "Low_Sodium":
		return "Low-sodium " + firstOr(options, string(mealType))
	default:
		name := firstOr(options, fallback)
		if disease != "" && disease != string(DiseaseNone) {
			return disease + "-friendly " + name
		}
		return name
	}
}

func firstOr(options []string, fallback string) string {
	if len(options) > 0 {
		return options[0]
	}
	return fallback
}

// mealTags derives lower-cased hyphenated tags from the diet
// recommendation, disease type and restriction list.
func mealTags(dietRecommendation, disease string, restrictions []string) []string {
	var tags []string
	if dietRecommendation != "" {
		tags = append(tags, tagify(dietRecommendation))
	}
	if disease != "" && disease != string(DiseaseNone) {
		tags = append(tags, strings.ToLower(disease))
	}
	for _, r := range restrictions {
		tags = append(tags, tagify(r))
	}
	return tags
}

func tagify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
