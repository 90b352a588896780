package engine

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ValidationError marks a caller input problem (bad date range, oversized
// span). Handlers map it to a 400 response.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrEndBeforeStart = ValidationError("end date must be after start date")
	ErrSpanTooLarge   = ValidationError("meal plan cannot exceed 30 days")
)

const maxPlanDays = 30

// Goal calorie adjustments applied to TDEE.
var goalCalorieAdjustments = map[string]float64{
	"weight_loss":         0.85,
	"muscle_gain":         1.15,
	"maintenance":         1.0,
	"diabetes_management": 0.95,
}

// Goal macro ratio sets for the plan's daily target.
var goalMacroRatios = map[string]macroRatio{
	"muscle_gain": {Protein: 0.30, Carb: 0.40, Fat: 0.30},
	"weight_loss": {Protein: 0.35, Carb: 0.35, Fat: 0.30},
}

// Mifflin-St Jeor activity multipliers, keyed by the raw activity level.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

const (
	defaultTDEE         = 2000
	dailyFiberGrams     = 25.0
	defaultActivityMult = 1.2
)

// BMR computes the Mifflin-St Jeor basal metabolic rate. The second return
// is false when age, height, weight or gender is missing.
func BMR(p Profile) (float64, bool) {
	if p.Age <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 || p.Gender == "" {
		return 0, false
	}
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if strings.EqualFold(p.Gender, "male") {
		return base + 5, true
	}
	return base - 161, true
}

// TDEE scales BMR by the activity multiplier; an incomplete profile yields
// the 2000 kcal default.
func TDEE(p Profile) float64 {
	bmr, ok := BMR(p)
	if !ok {
		return defaultTDEE
	}
	mult, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(p.ActivityLevel))]
	if !ok {
		mult = defaultActivityMult
	}
	return bmr * mult
}

// DailyCalories applies the goal adjustment to TDEE.
func DailyCalories(p Profile, goal string) float64 {
	adjust, ok := goalCalorieAdjustments[goal]
	if !ok {
		adjust = 1.0
	}
	return TDEE(p) * adjust
}

// DailyTarget builds the plan-level daily nutrition target for a goal.
func DailyTarget(p Profile, goal string) Estimate {
	calories := DailyCalories(p, goal)
	ratio, ok := goalMacroRatios[goal]
	if !ok {
		ratio = defaultRatio
	}
	return Estimate{
		Calories:      calories,
		Protein:       calories * ratio.Protein / kcalPerGramProtein,
		Carbohydrates: calories * ratio.Carb / kcalPerGramCarb,
		Fat:           calories * ratio.Fat / kcalPerGramFat,
		Fiber:         dailyFiberGrams,
	}
}

// daysInclusive counts calendar days in [start, end]. Dates are re-anchored
// in UTC so a DST transition inside the span cannot shift the count.
func daysInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// PlannedMeal is a generated meal pinned to a calendar day.
type PlannedMeal struct {
	Date time.Time `json:"date"`
	Meal
}

// Plan is an assembled multi-day meal plan. Meals are ordered days
// ascending, then breakfast/lunch/dinner/snack.
type Plan struct {
	Start  time.Time     `json:"start_date"`
	End    time.Time     `json:"end_date"`
	Goal   string        `json:"goal"`
	Target Estimate      `json:"daily_nutrition_target"`
	Meals  []PlannedMeal `json:"meals"`
}

// GeneratePlan assembles a meal plan for [start, end] inclusive. Each day's
// slots are independent, so days are generated concurrently; the assembled
// order stays deterministic.
func (r *Recommender) GeneratePlan(ctx context.Context, profile Profile, start, end time.Time, goal string) (*Plan, error) {
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}
	days := daysInclusive(start, end)
	if days > maxPlanDays {
		return nil, ErrSpanTooLarge
	}

	if goal == "" {
		goal = profile.HealthGoal
	}
	if goal == "" {
		goal = "maintenance"
	}

	dailyCalories := DailyCalories(profile, goal)
	target := DailyTarget(profile, goal)

	perDay := make([][]PlannedMeal, days)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < days; i++ {
		day := i
		date := start.AddDate(0, 0, day)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var meals []PlannedMeal
			for _, mealType := range MealTypes {
				slotCalories := dailyCalories * MealCalorieShare[mealType]
				candidates := r.Recommend(profile, mealType, slotCalories)
				if len(candidates) == 0 {
					continue
				}
				meals = append(meals, PlannedMeal{Date: date, Meal: candidates[0]})
			}
			perDay[day] = meals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan := &Plan{Start: start, End: end, Goal: goal, Target: target}
	for _, meals := range perDay {
		plan.Meals = append(plan.Meals, meals...)
	}
	return plan, nil
}
